package salarystructure

type SetSalaryStructureRequest struct {
	CTC              int64  `json:"ctc" binding:"required,gte=0"`
	BasicSalary      int64  `json:"basic_salary" binding:"required,gte=0"`
	HRA              int64  `json:"hra" binding:"gte=0"`
	SpecialAllowance int64  `json:"special_allowance" binding:"gte=0"`
	PFEmployer       int64  `json:"pf_employer" binding:"gte=0"`
	PFEmployee       int64  `json:"pf_employee" binding:"gte=0"`
	ProfessionalTax  int64  `json:"professional_tax" binding:"gte=0"`
	EffectiveFrom    string `json:"effective_from" binding:"required"`
}

type SalaryStructureResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	CTC              int64  `json:"ctc"`
	BasicSalary      int64  `json:"basic_salary"`
	HRA              int64  `json:"hra"`
	SpecialAllowance int64  `json:"special_allowance"`
	PFEmployer       int64  `json:"pf_employer"`
	PFEmployee       int64  `json:"pf_employee"`
	ProfessionalTax  int64  `json:"professional_tax"`
	EffectiveFrom    string `json:"effective_from"`
	CreatedBy        string `json:"created_by,omitempty"`
}
