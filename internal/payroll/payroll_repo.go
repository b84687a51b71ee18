package payroll

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayrollInput is one ACTIVE employee joined with their salary structure and
// the set of document types that currently hold an APPROVED record.
type PayrollInput struct {
	EmployeeID       string  `gorm:"column:employee_id"`
	Email            string  `gorm:"column:email"`
	StructureID      *string `gorm:"column:structure_id"`
	BasicSalary      int64   `gorm:"column:basic_salary"`
	HRA              int64   `gorm:"column:hra"`
	SpecialAllowance int64   `gorm:"column:special_allowance"`
	PFEmployee       int64   `gorm:"column:pf_employee"`
	PFEmployer       int64   `gorm:"column:pf_employer"`
	ProfessionalTax  int64   `gorm:"column:professional_tax"`
	ApprovedDocTypes string  `gorm:"column:approved_doc_types"`
}

func (p PayrollInput) HasStructure() bool {
	return p.StructureID != nil
}

func (p PayrollInput) ApprovedTypes() []string {
	if p.ApprovedDocTypes == "" {
		return nil
	}
	return strings.Split(p.ApprovedDocTypes, ",")
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActivePayrollInputs(ctx context.Context) ([]PayrollInput, error)
	UpsertRecord(ctx context.Context, record *PayrollRecord) error
	ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	txdb, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: txdb}
}

func (r *repository) ListActivePayrollInputs(ctx context.Context) ([]PayrollInput, error) {
	var inputs []PayrollInput
	query := `
SELECT
	e.id AS employee_id,
	e.email,
	s.id AS structure_id,
	COALESCE(s.basic_salary, 0)      AS basic_salary,
	COALESCE(s.hra, 0)               AS hra,
	COALESCE(s.special_allowance, 0) AS special_allowance,
	COALESCE(s.pf_employee, 0)       AS pf_employee,
	COALESCE(s.pf_employer, 0)       AS pf_employer,
	COALESCE(s.professional_tax, 0)  AS professional_tax,
	COALESCE((
		SELECT string_agg(DISTINCT d.document_type, ',')
		FROM employee_documents d
		WHERE d.employee_id = e.id
		  AND d.status = 'APPROVED'
		  AND d.deleted_at IS NULL
	), '') AS approved_doc_types
FROM employees e
LEFT JOIN salary_structures s
	ON s.employee_id = e.id AND s.deleted_at IS NULL
WHERE e.status = 'ACTIVE'
  AND e.deleted_at IS NULL
ORDER BY e.employee_code ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&inputs).Error
	return inputs, err
}

// UpsertRecord makes reprocessing a month idempotent: a rerun overwrites the
// existing employee-month row instead of inserting a duplicate.
func (r *repository) UpsertRecord(ctx context.Context, record *PayrollRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"basic_salary", "hra", "special_allowance", "gross_salary",
				"pf_deduction", "pf_employer", "professional_tax", "tds", "total_deductions",
				"net_salary", "status", "processed_at", "processed_by", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *repository) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status IN ?", employeeID, []string{StatusProcessed, StatusPaid}).
		Order("year desc, month desc").
		Find(&records).Error
	return records, err
}
