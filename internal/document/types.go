package document

const (
	TypeGovernmentID = "GOVERNMENT_ID"
	TypeTaxID        = "TAX_ID"
	TypeResume       = "RESUME"
	TypeProfilePhoto = "PROFILE_PHOTO"
	TypeBankProof    = "BANK_PROOF"
	TypeEducation    = "EDUCATION"
	TypeExperience   = "EXPERIENCE"
	TypeOfferLetter  = "OFFER_LETTER"
	TypeOther        = "OTHER"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

var validTypes = map[string]struct{}{
	TypeGovernmentID: {},
	TypeTaxID:        {},
	TypeResume:       {},
	TypeProfilePhoto: {},
	TypeBankProof:    {},
	TypeEducation:    {},
	TypeExperience:   {},
	TypeOfferLetter:  {},
	TypeOther:        {},
}

// RequiredTypes must each have at least one APPROVED document before an
// onboarding employee becomes ACTIVE and payroll-eligible. OTHER is excluded.
var RequiredTypes = []string{
	TypeGovernmentID,
	TypeTaxID,
	TypeResume,
	TypeProfilePhoto,
	TypeBankProof,
	TypeEducation,
	TypeExperience,
	TypeOfferLetter,
}

func IsValidType(t string) bool {
	_, ok := validTypes[t]
	return ok
}

// HasAllRequiredApproved reports whether every required document type appears
// in the given set of approved types.
func HasAllRequiredApproved(approvedTypes []string) bool {
	seen := make(map[string]struct{}, len(approvedTypes))
	for _, t := range approvedTypes {
		seen[t] = struct{}{}
	}
	for _, required := range RequiredTypes {
		if _, ok := seen[required]; !ok {
			return false
		}
	}
	return true
}
