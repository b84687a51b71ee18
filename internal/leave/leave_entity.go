package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeAnnual    = "ANNUAL"
	TypeSick      = "SICK"
	TypeCasual    = "CASUAL"
	TypeUnpaid    = "UNPAID"
	TypeMaternity = "MATERNITY"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Leave struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID      uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_employee"`
	LeaveType       string         `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate       time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate         time.Time      `gorm:"column:end_date;type:date;not null"`
	TotalDays       int            `gorm:"column:total_days;not null"`
	Reason          string         `gorm:"column:reason;type:text"`
	Status          string         `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	ApprovedBy      *uuid.UUID     `gorm:"column:approved_by;type:uuid"`
	ApprovedAt      *time.Time     `gorm:"column:approved_at"`
	RejectionReason string         `gorm:"column:rejection_reason;type:text"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Leave) TableName() string {
	return "leaves"
}
