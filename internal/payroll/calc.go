package payroll

// SalaryInputs are the structure components a monthly computation runs on.
type SalaryInputs struct {
	BasicSalary      int64
	HRA              int64
	SpecialAllowance int64
	PFEmployee       int64
	ProfessionalTax  int64
}

// SalaryBreakdown is the computed employee-month result.
type SalaryBreakdown struct {
	BasicSalary      int64
	HRA              int64
	SpecialAllowance int64
	GrossSalary      int64
	PFDeduction      int64
	ProfessionalTax  int64
	TDS              int64
	TotalDeductions  int64
	NetSalary        int64
}

// Calculate derives the monthly breakdown from the salary structure:
// gross is the sum of earnings, deductions are employee PF plus professional
// tax, and TDS is carried as a zero line item until withholding is modelled.
func Calculate(in SalaryInputs) SalaryBreakdown {
	gross := in.BasicSalary + in.HRA + in.SpecialAllowance
	deductions := in.PFEmployee + in.ProfessionalTax

	return SalaryBreakdown{
		BasicSalary:      in.BasicSalary,
		HRA:              in.HRA,
		SpecialAllowance: in.SpecialAllowance,
		GrossSalary:      gross,
		PFDeduction:      in.PFEmployee,
		ProfessionalTax:  in.ProfessionalTax,
		TDS:              0,
		TotalDeductions:  deductions,
		NetSalary:        gross - deductions,
	}
}
