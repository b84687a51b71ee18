package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	got := Calculate(SalaryInputs{
		BasicSalary:      30000,
		HRA:              12000,
		SpecialAllowance: 3000,
		PFEmployee:       1800,
		ProfessionalTax:  200,
	})

	assert.Equal(t, int64(45000), got.GrossSalary)
	assert.Equal(t, int64(1800), got.PFDeduction)
	assert.Equal(t, int64(200), got.ProfessionalTax)
	assert.Equal(t, int64(0), got.TDS)
	assert.Equal(t, int64(2000), got.TotalDeductions)
	assert.Equal(t, int64(43000), got.NetSalary)
}

func TestCalculate_ZeroStructure(t *testing.T) {
	got := Calculate(SalaryInputs{})

	assert.Equal(t, int64(0), got.GrossSalary)
	assert.Equal(t, int64(0), got.TotalDeductions)
	assert.Equal(t, int64(0), got.NetSalary)
}

func TestCalculate_NoDeductions(t *testing.T) {
	got := Calculate(SalaryInputs{BasicSalary: 50000, HRA: 20000})

	assert.Equal(t, int64(70000), got.GrossSalary)
	assert.Equal(t, int64(70000), got.NetSalary)
}
