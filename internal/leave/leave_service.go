package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	leaveerrors "github.com/BibekanandaBariki/technnext-hrms/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, userID string, req ApplyLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, userID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, leaveID, approverID string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) Apply(ctx context.Context, userID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	row := &Leave{
		ID:         uuid.New(),
		EmployeeID: empl.ID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  TotalDays(start, end),
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("apply leave persist failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", row.ID.String()),
		zap.String("employee_id", empl.ID.String()),
		zap.Int("total_days", row.TotalDays),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]LeaveResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	rows, err := s.repo.FindByEmployee(ctx, empl.ID.String())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListPending(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) UpdateStatus(ctx context.Context, leaveID, approverID string, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	approver, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidApprover
	}

	now := time.Now().UTC()
	row.Status = req.Status
	row.ApprovedBy = &approver
	row.ApprovedAt = &now
	if req.Status == StatusRejected {
		row.RejectionReason = req.RejectionReason
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update leave status failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", leaveID),
		zap.String("status", req.Status),
		zap.String("decided_by", approverID),
	)
	return mapToResponse(*row), nil
}

// TotalDays counts calendar days inclusive of both endpoints.
func TotalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(l Leave) LeaveResponse {
	res := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ApprovedBy != nil {
		res.ApprovedBy = l.ApprovedBy.String()
	}
	if l.ApprovedAt != nil {
		res.ApprovedAt = l.ApprovedAt.UTC().Format(time.RFC3339)
	}
	return res
}

func mapToListResponse(rows []Leave) []LeaveResponse {
	res := make([]LeaveResponse, 0, len(rows))
	for _, l := range rows {
		res = append(res, mapToResponse(l))
	}
	return res
}
