package designation

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_repo.go -destination=mock/designation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, desig *Designation) error
	FindAll(ctx context.Context) ([]Designation, error)
	FindByID(ctx context.Context, id string) (*Designation, error)
	Update(ctx context.Context, desig *Designation) error
	Delete(ctx context.Context, id string) error
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, desig *Designation) error {
	return r.db.WithContext(ctx).Create(desig).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Designation, error) {
	var desigs []Designation
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name asc").
		Find(&desigs).Error
	return desigs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Designation, error) {
	var desig Designation
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&desig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &desig, nil
}

func (r *repository) Update(ctx context.Context, desig *Designation) error {
	return r.db.WithContext(ctx).Save(desig).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Designation{}, "id = ?", id).Error
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ? AND deleted_at IS NULL", departmentID).
		Count(&count).Error
	return count > 0, err
}
