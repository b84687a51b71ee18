package document

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, doc *EmployeeDocument) error
	FindByID(ctx context.Context, id string) (*EmployeeDocument, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeDocument, error)
	Update(ctx context.Context, doc *EmployeeDocument) error
	ListApprovedTypes(ctx context.Context, employeeID string) ([]string, error)
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

func (r *repository) Create(ctx context.Context, doc *EmployeeDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeDocument, error) {
	var doc EmployeeDocument
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]EmployeeDocument, error) {
	var docs []EmployeeDocument
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at desc").
		Find(&docs).Error
	return docs, err
}

func (r *repository) Update(ctx context.Context, doc *EmployeeDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *repository) ListApprovedTypes(ctx context.Context, employeeID string) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).
		Model(&EmployeeDocument{}).
		Distinct("document_type").
		Where("employee_id = ? AND status = ?", employeeID, StatusApproved).
		Pluck("document_type", &types).Error
	return types, err
}
