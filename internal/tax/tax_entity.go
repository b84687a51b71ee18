package tax

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusVerified  = "VERIFIED"
)

// TaxDeclaration holds one employee's investment declaration for a financial
// year ("2024-25"). Amounts are int64 minor currency units.
type TaxDeclaration struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_tax_employee_fy"`
	FinancialYear   string         `gorm:"size:10;not null;uniqueIndex:uq_tax_employee_fy"`
	Section80C      int64          `gorm:"column:section_80c;not null;default:0"`
	Section80D      int64          `gorm:"column:section_80d;not null;default:0"`
	HRAClaimed      int64          `gorm:"column:hra_claimed;not null;default:0"`
	OtherDeductions int64          `gorm:"not null;default:0"`
	Status          string         `gorm:"size:20;not null;default:DRAFT"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (TaxDeclaration) TableName() string {
	return "tax_declarations"
}
