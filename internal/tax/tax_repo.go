package tax

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=tax_repo.go -destination=mock/tax_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, decl *TaxDeclaration) error
	FindByEmployeeAndYear(ctx context.Context, employeeID, financialYear string) (*TaxDeclaration, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]TaxDeclaration, error)
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

// Upsert overwrites the declaration for (employee, financial year). The
// status column is part of the update set so a re-declaration always lands
// back in DRAFT.
func (r *repository) Upsert(ctx context.Context, decl *TaxDeclaration) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "financial_year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"section_80c", "section_80d", "hra_claimed",
				"other_deductions", "status", "updated_at",
			}),
		}).
		Create(decl).Error
}

func (r *repository) FindByEmployeeAndYear(ctx context.Context, employeeID, financialYear string) (*TaxDeclaration, error) {
	var decl TaxDeclaration
	err := r.db.WithContext(ctx).
		First(&decl, "employee_id = ? AND financial_year = ?", employeeID, financialYear).Error
	if err != nil {
		return nil, err
	}
	return &decl, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]TaxDeclaration, error) {
	var decls []TaxDeclaration
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("financial_year desc").
		Find(&decls).Error
	return decls, err
}
