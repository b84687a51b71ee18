package tax

type DeclareTaxRequest struct {
	FinancialYear   string `json:"financial_year" binding:"required"`
	Section80C      int64  `json:"section_80c" binding:"gte=0"`
	Section80D      int64  `json:"section_80d" binding:"gte=0"`
	HRAClaimed      int64  `json:"hra_claimed" binding:"gte=0"`
	OtherDeductions int64  `json:"other_deductions" binding:"gte=0"`
}

type TaxDeclarationResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	FinancialYear   string `json:"financial_year"`
	Section80C      int64  `json:"section_80c"`
	Section80D      int64  `json:"section_80d"`
	HRAClaimed      int64  `json:"hra_claimed"`
	OtherDeductions int64  `json:"other_deductions"`
	Status          string `json:"status"`
	UpdatedAt       string `json:"updated_at"`
}
