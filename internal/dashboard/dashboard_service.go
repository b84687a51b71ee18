package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	AdminStats(ctx context.Context) (AdminStatsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) AdminStats(ctx context.Context) (AdminStatsResponse, error) {
	stats, err := s.repo.AdminStats(ctx, s.now().UTC())
	if err != nil {
		s.logger.Error("load admin stats failed", zap.Error(err))
		return AdminStatsResponse{}, err
	}

	return AdminStatsResponse{
		TotalEmployees:    stats.TotalEmployees,
		ActiveEmployees:   stats.ActiveEmployees,
		PendingOnboarding: stats.PendingOnboarding,
		PendingDocuments:  stats.PendingDocuments,
		PayrollDraft:      stats.PayrollDraft,
		PayrollProcessed:  stats.PayrollProcessed,
		PayrollPaid:       stats.PayrollPaid,
		OnLeaveToday:      stats.OnLeaveToday,
	}, nil
}
