package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOnboarding = "ONBOARDING"
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID             *uuid.UUID     `gorm:"type:uuid;uniqueIndex:uq_employee_user"`
	EmployeeCode       string         `gorm:"size:20;not null;uniqueIndex:uq_employee_code"`
	FirstName          string         `gorm:"size:100;not null"`
	LastName           string         `gorm:"size:100;not null"`
	Email              string         `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Phone              string         `gorm:"size:20"`
	DepartmentID       *uuid.UUID     `gorm:"type:uuid"`
	DesignationID      *uuid.UUID     `gorm:"type:uuid"`
	ReportingManagerID *uuid.UUID     `gorm:"type:uuid"`
	DateOfJoining      time.Time      `gorm:"not null"`
	Status             string         `gorm:"size:20;not null;default:ONBOARDING"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
