package document

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeDocument struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_document_employee"`
	DocumentType string     `gorm:"size:30;not null"`
	Status       string     `gorm:"size:20;not null;default:PENDING"`
	FileName     string     `gorm:"size:255;not null"`
	FileKey      string     `gorm:"size:512;not null"`
	FileSize     int64      `gorm:"not null"`
	MimeType     string     `gorm:"size:100"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	Comments     string         `gorm:"size:500"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (EmployeeDocument) TableName() string {
	return "employee_documents"
}
