package salarystructure

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, structure *SalaryStructure) error
	FindByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
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

// Upsert keeps the one-structure-per-employee invariant at the database
// level: conflicts on employee_id overwrite the existing row in place.
func (r *repository) Upsert(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"ctc", "basic_salary", "hra", "special_allowance",
				"pf_employer", "pf_employee", "professional_tax",
				"effective_from", "created_by", "updated_at",
			}),
		}).
		Create(structure).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).First(&structure, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}
