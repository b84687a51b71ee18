package department

import (
	"context"
	"database/sql"
	"testing"

	departmenterrors "github.com/BibekanandaBariki/technnext-hrms/internal/department/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, dept *Department) error
	findAllFn  func(ctx context.Context) ([]Department, error)
	findByIDFn func(ctx context.Context, id string) (*Department, error)
	updateFn   func(ctx context.Context, dept *Department) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, dept *Department) error {
	return f.createFn(ctx, dept)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Department, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Department, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, dept *Department) error {
	return f.updateFn(ctx, dept)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved *Department
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, dept *Department) error {
		saved = dept
		return nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateDepartmentRequest{
		Name:        "Engineering",
		Description: "Product development",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Engineering", resp.Name)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	existing := &Department{ID: uuid.New(), Name: "Engg", Description: ""}

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Department, error) { return existing, nil }
	repo.updateFn = func(ctx context.Context, dept *Department) error { return nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdateDepartmentRequest{
		Name:        "Engineering",
		Description: "Product development",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Engineering", resp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Department, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestService_Delete(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	deleted := false

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, did string) (*Department, error) {
		return &Department{ID: id}, nil
	}
	repo.deleteFn = func(ctx context.Context, did string) error {
		deleted = true
		return nil
	}

	svc := NewService(db, repo)

	assert.NoError(t, svc.Delete(context.Background(), id.String()))
	assert.True(t, deleted)
}
