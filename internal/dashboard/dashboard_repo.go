package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// AdminStats is the raw aggregate row behind the HR overview.
type AdminStats struct {
	TotalEmployees    int64 `gorm:"column:total_employees"`
	ActiveEmployees   int64 `gorm:"column:active_employees"`
	PendingOnboarding int64 `gorm:"column:pending_onboarding"`
	PendingDocuments  int64 `gorm:"column:pending_documents"`
	PayrollDraft      int64 `gorm:"column:payroll_draft"`
	PayrollProcessed  int64 `gorm:"column:payroll_processed"`
	PayrollPaid       int64 `gorm:"column:payroll_paid"`
	OnLeaveToday      int64 `gorm:"column:on_leave_today"`
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	AdminStats(ctx context.Context, today time.Time) (AdminStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AdminStats(ctx context.Context, today time.Time) (AdminStats, error) {
	var stats AdminStats
	query := `
SELECT
	(SELECT COUNT(*) FROM employees
		WHERE deleted_at IS NULL)                                   AS total_employees,
	(SELECT COUNT(*) FROM employees
		WHERE status = 'ACTIVE' AND deleted_at IS NULL)             AS active_employees,
	(SELECT COUNT(*) FROM employees
		WHERE status = 'ONBOARDING' AND deleted_at IS NULL)         AS pending_onboarding,
	(SELECT COUNT(*) FROM employee_documents
		WHERE status = 'PENDING' AND deleted_at IS NULL)            AS pending_documents,
	(SELECT COUNT(*) FROM payroll_records
		WHERE status = 'DRAFT' AND deleted_at IS NULL)              AS payroll_draft,
	(SELECT COUNT(*) FROM payroll_records
		WHERE status = 'PROCESSED' AND deleted_at IS NULL)          AS payroll_processed,
	(SELECT COUNT(*) FROM payroll_records
		WHERE status = 'PAID' AND deleted_at IS NULL)               AS payroll_paid,
	(SELECT COUNT(*) FROM leaves
		WHERE status = 'APPROVED' AND deleted_at IS NULL
		  AND start_date <= ? AND end_date >= ?)                    AS on_leave_today
`

	day := today.Format("2006-01-02")
	err := r.db.WithContext(ctx).Raw(query, day, day).Scan(&stats).Error
	return stats, err
}
