package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/BibekanandaBariki/technnext-hrms/internal/attendance/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Workday thresholds in local time.
const (
	lateHour          = 9
	lateMinute        = 30
	workdayEndHour    = 18
	halfDayHours      = 4.0
	historyWindowDays = 30
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	PunchIn(ctx context.Context, userID string) (AttendanceResponse, error)
	PunchOut(ctx context.Context, userID string) (AttendanceResponse, error)
	Today(ctx context.Context, userID string) (TodayResponse, error)
	ListMine(ctx context.Context, userID string) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) PunchIn(ctx context.Context, userID string) (AttendanceResponse, error) {
	empl, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := dateOnly(now)

	existing, err := qtx.FindByEmployeeAndDate(ctx, empl.ID.String(), today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedIn
	}

	late := isLate(now)
	status := StatusPresent
	if late {
		status = StatusLate
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     empl.ID,
		AttendanceDate: today,
		PunchIn:        now,
		IsLate:         late,
		Status:         status,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("punch in persist failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("punch in recorded",
		zap.String("employee_id", empl.ID.String()),
		zap.Bool("late", late),
	)
	return mapToResponse(*row), nil
}

func (s *service) PunchOut(ctx context.Context, userID string) (AttendanceResponse, error) {
	empl, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := dateOnly(now)

	row, err := qtx.FindByEmployeeAndDate(ctx, empl.ID.String(), today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotPunchedIn
		}
		return AttendanceResponse{}, err
	}
	if row.PunchOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedOut
	}

	row.PunchOut = &now
	row.WorkHours = now.Sub(row.PunchIn).Hours()
	row.EarlyDeparture = now.Hour() < workdayEndHour
	if row.WorkHours < halfDayHours {
		row.Status = StatusHalfDay
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("punch out persist failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("punch out recorded",
		zap.String("employee_id", empl.ID.String()),
		zap.Float64("work_hours", row.WorkHours),
	)
	return mapToResponse(*row), nil
}

func (s *service) Today(ctx context.Context, userID string) (TodayResponse, error) {
	empl, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return TodayResponse{}, err
	}

	row, err := s.repo.FindByEmployeeAndDate(ctx, empl.ID.String(), dateOnly(s.now()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TodayResponse{}, nil
		}
		return TodayResponse{}, err
	}

	resp := mapToResponse(*row)
	return TodayResponse{
		PunchedIn:  true,
		PunchedOut: row.PunchOut != nil,
		Record:     &resp,
	}, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]AttendanceResponse, error) {
	empl, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := dateOnly(s.now()).AddDate(0, 0, -historyWindowDays)
	rows, err := s.repo.ListByEmployeeSince(ctx, empl.ID.String(), since)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, mapToResponse(row))
	}
	return res, nil
}

func (s *service) resolveEmployee(ctx context.Context, userID string) (*employee.Employee, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return empl, nil
}

func isLate(t time.Time) bool {
	return t.Hour() > lateHour || (t.Hour() == lateHour && t.Minute() > lateMinute)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mapToResponse(a Attendance) AttendanceResponse {
	res := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		PunchIn:        a.PunchIn.Format(time.RFC3339),
		IsLate:         a.IsLate,
		EarlyDeparture: a.EarlyDeparture,
		WorkHours:      a.WorkHours,
		Status:         a.Status,
	}
	if a.PunchOut != nil {
		res.PunchOut = a.PunchOut.Format(time.RFC3339)
	}
	return res
}
