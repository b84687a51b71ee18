package designation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Designation struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name         string                 `gorm:"size:255;not null;uniqueIndex:uq_designation_name"`
	DepartmentID uuid.UUID              `gorm:"type:uuid;not null"`
	Department   *DesignationDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	CreatedAt    time.Time              `gorm:"autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt         `gorm:"index"`
}

type DesignationDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (DesignationDepartment) TableName() string {
	return "departments"
}
