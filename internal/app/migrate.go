package app

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/attendance"
	"github.com/BibekanandaBariki/technnext-hrms/internal/department"
	"github.com/BibekanandaBariki/technnext-hrms/internal/designation"
	"github.com/BibekanandaBariki/technnext-hrms/internal/document"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	"github.com/BibekanandaBariki/technnext-hrms/internal/leave"
	"github.com/BibekanandaBariki/technnext-hrms/internal/payroll"
	"github.com/BibekanandaBariki/technnext-hrms/internal/salarystructure"
	"github.com/BibekanandaBariki/technnext-hrms/internal/tax"
	"github.com/BibekanandaBariki/technnext-hrms/internal/user"

	"gorm.io/gorm"
)

// Migrate applies the schema. Tables owned by raw-SQL repositories (counters,
// outbox_events) are created with explicit DDL since no gorm model maps them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&department.Department{},
		&designation.Designation{},
		&employee.Employee{},
		&document.EmployeeDocument{},
		&attendance.Attendance{},
		&leave.Leave{},
		&salarystructure.SalaryStructure{},
		&payroll.PayrollRecord{},
		&tax.TaxDeclaration{},
	); err != nil {
		return err
	}

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value   BIGINT NOT NULL DEFAULT 0,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id             UUID PRIMARY KEY,
			request_id     VARCHAR(64),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id   VARCHAR(64) NOT NULL,
			event_type     VARCHAR(64) NOT NULL,
			topic          VARCHAR(128) NOT NULL,
			payload        JSONB NOT NULL,
			status         VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count    INT NOT NULL DEFAULT 0,
			next_retry_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			error_message  TEXT,
			processed_at   TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_status_retry
			ON outbox_events (status, next_retry_at)`,
	}

	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
