package payroll

type ProcessMonthResult struct {
	Year              int               `json:"year"`
	Month             int               `json:"month"`
	Records           []PayslipResponse `json:"records"`
	SkippedCount      int               `json:"skipped_count"`
	FailedEmployeeIDs []string          `json:"failed_employee_ids"`
}

type PayslipResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	BasicSalary      int64  `json:"basic_salary"`
	HRA              int64  `json:"hra"`
	SpecialAllowance int64  `json:"special_allowance"`
	GrossSalary      int64  `json:"gross_salary"`
	PFDeduction      int64  `json:"pf_deduction"`
	PFEmployer       int64  `json:"pf_employer"`
	ProfessionalTax  int64  `json:"professional_tax"`
	TDS              int64  `json:"tds"`
	TotalDeductions  int64  `json:"total_deductions"`
	NetSalary        int64  `json:"net_salary"`
	Status           string `json:"status"`
	ProcessedAt      string `json:"processed_at,omitempty"`
	PaidAt           string `json:"paid_at,omitempty"`
}
