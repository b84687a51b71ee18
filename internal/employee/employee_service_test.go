package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	employeeerrors "github.com/BibekanandaBariki/technnext-hrms/internal/employee/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/events"
	"github.com/BibekanandaBariki/technnext-hrms/internal/messaging/kafka"
	"github.com/BibekanandaBariki/technnext-hrms/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                       func(ctx context.Context, empl *Employee) error
	findAllFn                      func(ctx context.Context, page, limit int) ([]Employee, int64, error)
	findOptionsFn                  func(ctx context.Context) ([]Employee, error)
	findByIDFn                     func(ctx context.Context, id string) (*Employee, error)
	findByUserIDFn                 func(ctx context.Context, userID string) (*Employee, error)
	getDepartmentIDByDesignationFn func(ctx context.Context, designationID string) (string, error)
	updateFn                       func(ctx context.Context, empl *Employee) error
	updateStatusFn                 func(ctx context.Context, id string, status string) error
	deleteFn                       func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                     { return f }
func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error { return f.createFn(ctx, empl) }
func (f *fakeRepo) FindAll(ctx context.Context, page, limit int) ([]Employee, int64, error) {
	return f.findAllFn(ctx, page, limit)
}
func (f *fakeRepo) FindOptions(ctx context.Context) ([]Employee, error) {
	return f.findOptionsFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByUserID(ctx context.Context, userID string) (*Employee, error) {
	return f.findByUserIDFn(ctx, userID)
}
func (f *fakeRepo) GetDepartmentIDByDesignation(ctx context.Context, designationID string) (string, error) {
	return f.getDepartmentIDByDesignationFn(ctx, designationID)
}
func (f *fakeRepo) Update(ctx context.Context, empl *Employee) error { return f.updateFn(ctx, empl) }
func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

type fakeUserRepo struct {
	created *user.User
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) user.Repository { return f }
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.created = u
	return nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	return nil
}

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	designationID := uuid.New().String()
	departmentID := uuid.New().String()

	var saved *Employee
	repo := &fakeRepo{}
	repo.getDepartmentIDByDesignationFn = func(ctx context.Context, did string) (string, error) {
		assert.Equal(t, designationID, did)
		return departmentID, nil
	}
	repo.createFn = func(ctx context.Context, empl *Employee) error {
		saved = empl
		return nil
	}

	users := &fakeUserRepo{}
	counter := &fakeCounterRepo{next: 41}
	outbox := &fakeOutboxRepo{}

	svc := NewService(db, repo, users, counter, outbox, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha.verma@technnext.com",
		DesignationID: designationID,
		DateOfJoining: "2026-04-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000042", resp.EmployeeCode)
	assert.Equal(t, StatusOnboarding, resp.Status)
	assert.Equal(t, departmentID, resp.DepartmentID)

	assert.NotNil(t, users.created)
	assert.Equal(t, "asha.verma@technnext.com", users.created.Email)
	assert.Equal(t, user.RoleEmployee, users.created.Role)
	assert.True(t, users.created.IsActive)
	assert.Equal(t, users.created.ID, *saved.UserID)

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, events.EmployeeCreatedTopic, outbox.created[0].Topic)

	var event events.EmployeeCreatedEvent
	assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &event))
	assert.Equal(t, "employee_created", event.EventType)
	assert.Equal(t, "Asha Verma", event.FullName)
	assert.Len(t, event.TempPassword, 12)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(users.created.PasswordHash), []byte(event.TempPassword)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_BadJoiningDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeUserRepo{}, &fakeCounterRepo{}, &fakeOutboxRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha.verma@technnext.com",
		DesignationID: uuid.New().String(),
		DateOfJoining: "01/04/2026",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
}

func TestService_Create_UnknownDesignation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.getDepartmentIDByDesignationFn = func(ctx context.Context, did string) (string, error) {
		return "", nil
	}

	svc := NewService(db, repo, &fakeUserRepo{}, &fakeCounterRepo{}, &fakeOutboxRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha.verma@technnext.com",
		DesignationID: uuid.New().String(),
		DateOfJoining: "2026-04-01",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrDesignationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetAll_NormalizesPaging(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var gotPage, gotLimit int
	repo := &fakeRepo{}
	repo.findAllFn = func(ctx context.Context, page, limit int) ([]Employee, int64, error) {
		gotPage, gotLimit = page, limit
		return []Employee{{ID: uuid.New(), EmployeeCode: "EMP-000001"}}, 1, nil
	}

	svc := NewService(db, repo, &fakeUserRepo{}, &fakeCounterRepo{}, &fakeOutboxRepo{}, nil)

	_, total, err := svc.GetAll(context.Background(), 0, 500)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 20, gotLimit)
}

func TestService_GetOptions(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	calls := 0
	repo := &fakeRepo{}
	repo.findOptionsFn = func(ctx context.Context) ([]Employee, error) {
		calls++
		return []Employee{
			{ID: uuid.New(), EmployeeCode: "EMP-000001", FirstName: "Asha", LastName: "Verma"},
			{ID: uuid.New(), EmployeeCode: "EMP-000002", FirstName: "Ravi", LastName: "Iyer"},
		}, nil
	}

	svc := NewService(db, repo, &fakeUserRepo{}, &fakeCounterRepo{}, &fakeOutboxRepo{}, nil)

	opts, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, opts, 2)
	assert.Equal(t, "Asha Verma", opts[0].FullName)
	assert.Equal(t, 1, calls)
}

func TestService_Delete_Terminates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()

	var statusSet string
	var deleted bool
	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, eid string) (*Employee, error) {
		return &Employee{ID: id, Status: StatusActive}, nil
	}
	repo.updateStatusFn = func(ctx context.Context, eid string, status string) error {
		statusSet = status
		return nil
	}
	repo.deleteFn = func(ctx context.Context, eid string) error {
		deleted = true
		return nil
	}

	svc := NewService(db, repo, &fakeUserRepo{}, &fakeCounterRepo{}, &fakeOutboxRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.Delete(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusTerminated, statusSet)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, eid string) (*Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeUserRepo{}, &fakeCounterRepo{}, &fakeOutboxRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
