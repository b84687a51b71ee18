package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// All money fields are int64 minor currency units (paise). Arithmetic stays
// exact; there is no floating point anywhere in the payroll path.
type SalaryStructure struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_salary_structure_employee"`
	CTC              int64          `gorm:"column:ctc;not null"`
	BasicSalary      int64          `gorm:"not null"`
	HRA              int64          `gorm:"column:hra;not null"`
	SpecialAllowance int64          `gorm:"not null"`
	PFEmployer       int64          `gorm:"column:pf_employer;not null"`
	PFEmployee       int64          `gorm:"column:pf_employee;not null"`
	ProfessionalTax  int64          `gorm:"not null"`
	EffectiveFrom    time.Time      `gorm:"type:date;not null"`
	CreatedBy        uuid.UUID      `gorm:"type:uuid"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}
