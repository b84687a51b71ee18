package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
)

type Attendance struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time      `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	PunchIn        time.Time      `gorm:"column:punch_in;type:timestamptz;not null"`
	PunchOut       *time.Time     `gorm:"column:punch_out;type:timestamptz"`
	IsLate         bool           `gorm:"column:is_late;not null;default:false"`
	EarlyDeparture bool           `gorm:"column:early_departure;not null;default:false"`
	WorkHours      float64        `gorm:"column:work_hours;not null;default:0"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
