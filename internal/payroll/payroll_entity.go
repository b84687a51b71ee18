package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
)

// PayrollRecord is one employee-month of computed salary. Money fields are
// int64 minor currency units so arithmetic stays exact.
type PayrollRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_payroll_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_payroll_employee_period"`

	BasicSalary      int64 `gorm:"type:bigint;not null;default:0"`
	HRA              int64 `gorm:"column:hra;type:bigint;not null;default:0"`
	SpecialAllowance int64 `gorm:"type:bigint;not null;default:0"`
	GrossSalary      int64 `gorm:"type:bigint;not null;default:0"`
	PFDeduction      int64 `gorm:"column:pf_deduction;type:bigint;not null;default:0"`
	PFEmployer       int64 `gorm:"column:pf_employer;type:bigint;not null;default:0"`
	ProfessionalTax  int64 `gorm:"type:bigint;not null;default:0"`
	TDS              int64 `gorm:"column:tds;type:bigint;not null;default:0"`
	TotalDeductions  int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary        int64 `gorm:"type:bigint;not null;default:0"`

	Status      string     `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	ProcessedAt *time.Time `gorm:"index"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	PaidAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}
