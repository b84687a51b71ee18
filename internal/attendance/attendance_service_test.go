package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "github.com/BibekanandaBariki/technnext-hrms/internal/attendance/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, row *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	updateFn                func(ctx context.Context, row *Attendance) error
	listByEmployeeSinceFn   func(ctx context.Context, employeeID string, since time.Time) ([]Attendance, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, row *Attendance) error {
	return f.createFn(ctx, row)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) Update(ctx context.Context, row *Attendance) error {
	return f.updateFn(ctx, row)
}
func (f *fakeRepo) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]Attendance, error) {
	return f.listByEmployeeSinceFn(ctx, employeeID, since)
}

type fakeEmployeeRepo struct {
	empl *employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository                     { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) FindAll(ctx context.Context, page, limit int) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeRepo) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	if f.empl == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.empl, nil
}
func (f *fakeEmployeeRepo) GetDepartmentIDByDesignation(ctx context.Context, designationID string) (string, error) {
	return "", nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func testEmployee() *employee.Employee {
	return &employee.Employee{ID: uuid.New(), Status: employee.StatusActive}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestService_PunchIn(t *testing.T) {
	cases := []struct {
		name       string
		clock      time.Time
		wantLate   bool
		wantStatus string
	}{
		{"on time", at(9, 0), false, StatusPresent},
		{"exactly nine thirty", at(9, 30), false, StatusPresent},
		{"one minute past the grace", at(9, 31), true, StatusLate},
		{"late morning", at(11, 0), true, StatusLate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer db.Close()

			var saved *Attendance
			repo := &fakeRepo{}
			repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			}
			repo.createFn = func(ctx context.Context, row *Attendance) error {
				saved = row
				return nil
			}

			svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()}).(*service)
			svc.now = func() time.Time { return tc.clock }

			mock.ExpectBegin()
			mock.ExpectCommit()
			resp, err := svc.PunchIn(context.Background(), uuid.New().String())
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLate, resp.IsLate)
			assert.Equal(t, tc.wantStatus, resp.Status)
			assert.Equal(t, tc.clock, saved.PunchIn)
			assert.Equal(t, "2026-03-10", resp.AttendanceDate)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestService_PunchIn_Twice(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), PunchIn: at(9, 0)}, nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()}).(*service)
	svc.now = func() time.Time { return at(10, 0) }

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.PunchIn(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_PunchIn_NoEmployeeProfile(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEmployeeRepo{})

	_, err := svc.PunchIn(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
}

func TestService_PunchOut(t *testing.T) {
	cases := []struct {
		name       string
		in         time.Time
		out        time.Time
		wantEarly  bool
		wantStatus string
		wantHours  float64
	}{
		{"full day", at(9, 0), at(18, 0), false, StatusPresent, 9},
		{"early departure", at(9, 0), at(17, 0), true, StatusPresent, 8},
		{"half day", at(9, 0), at(12, 0), true, StatusHalfDay, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer db.Close()

			open := &Attendance{
				ID:             uuid.New(),
				EmployeeID:     uuid.New(),
				AttendanceDate: at(0, 0),
				PunchIn:        tc.in,
				Status:         StatusPresent,
			}

			repo := &fakeRepo{}
			repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
				return open, nil
			}
			repo.updateFn = func(ctx context.Context, row *Attendance) error { return nil }

			svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()}).(*service)
			svc.now = func() time.Time { return tc.out }

			mock.ExpectBegin()
			mock.ExpectCommit()
			resp, err := svc.PunchOut(context.Background(), uuid.New().String())
			assert.NoError(t, err)
			assert.Equal(t, tc.wantEarly, resp.EarlyDeparture)
			assert.Equal(t, tc.wantStatus, resp.Status)
			assert.InDelta(t, tc.wantHours, resp.WorkHours, 0.001)
			assert.NotEmpty(t, resp.PunchOut)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestService_PunchOut_WithoutPunchIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.PunchOut(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, attendanceerrors.ErrNotPunchedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_PunchOut_Twice(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	out := at(18, 0)
	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), PunchIn: at(9, 0), PunchOut: &out}, nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.PunchOut(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Today(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()})

	resp, err := svc.Today(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.False(t, resp.PunchedIn)
	assert.Nil(t, resp.Record)

	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), PunchIn: at(9, 0)}, nil
	}
	resp, err = svc.Today(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.True(t, resp.PunchedIn)
	assert.False(t, resp.PunchedOut)
	assert.NotNil(t, resp.Record)
}

func TestService_ListMine_WindowIsThirtyDays(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var gotSince time.Time
	repo := &fakeRepo{}
	repo.listByEmployeeSinceFn = func(ctx context.Context, employeeID string, since time.Time) ([]Attendance, error) {
		gotSince = since
		return []Attendance{{ID: uuid.New(), PunchIn: at(9, 0)}}, nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{empl: testEmployee()}).(*service)
	svc.now = func() time.Time { return at(10, 0) }

	rows, err := svc.ListMine(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), gotSince)
}
