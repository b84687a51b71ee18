package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/BibekanandaBariki/technnext-hrms/internal/document"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	"github.com/BibekanandaBariki/technnext-hrms/internal/events"
	"github.com/BibekanandaBariki/technnext-hrms/internal/messaging/kafka"
	payrollerrors "github.com/BibekanandaBariki/technnext-hrms/internal/payroll/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	minYear = 2000
	maxYear = 2100
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ProcessMonth(ctx context.Context, year, month int, actorID string) (ProcessMonthResult, error)
	GetMyPayslips(ctx context.Context, userID string) ([]PayslipResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
		now:       time.Now,
	}
}

// ProcessMonth runs payroll for every ACTIVE employee. Employees without a
// salary structure or without the full approved document set are skipped, not
// failed. Each upsert is its own unit of work so one broken employee never
// aborts the run; failures are reported in the result instead.
func (s *service) ProcessMonth(ctx context.Context, year, month int, actorID string) (ProcessMonthResult, error) {
	if month < 1 || month > 12 || year < minYear || year > maxYear {
		return ProcessMonthResult{}, payrollerrors.ErrInvalidPeriod
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return ProcessMonthResult{}, payrollerrors.ErrInvalidActor
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Info("payroll run started",
		zap.String("request_id", rid),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.String("actor_id", actorID),
	)

	inputs, err := s.repo.ListActivePayrollInputs(ctx)
	if err != nil {
		s.logger.Error("payroll run load inputs failed", zap.Error(err))
		return ProcessMonthResult{}, err
	}

	result := ProcessMonthResult{
		Year:              year,
		Month:             month,
		Records:           []PayslipResponse{},
		FailedEmployeeIDs: []string{},
	}
	processedAt := s.now().UTC()
	var notified []events.PayrollRunEmployee

	for _, in := range inputs {
		if !in.HasStructure() {
			s.logger.Debug("payroll skip: no salary structure", zap.String("employee_id", in.EmployeeID))
			result.SkippedCount++
			continue
		}
		if !document.HasAllRequiredApproved(in.ApprovedTypes()) {
			s.logger.Debug("payroll skip: document verification incomplete", zap.String("employee_id", in.EmployeeID))
			result.SkippedCount++
			continue
		}

		breakdown := Calculate(SalaryInputs{
			BasicSalary:      in.BasicSalary,
			HRA:              in.HRA,
			SpecialAllowance: in.SpecialAllowance,
			PFEmployee:       in.PFEmployee,
			ProfessionalTax:  in.ProfessionalTax,
		})

		record := &PayrollRecord{
			ID:               uuid.New(),
			EmployeeID:       uuid.MustParse(in.EmployeeID),
			Month:            month,
			Year:             year,
			BasicSalary:      breakdown.BasicSalary,
			HRA:              breakdown.HRA,
			SpecialAllowance: breakdown.SpecialAllowance,
			GrossSalary:      breakdown.GrossSalary,
			PFDeduction:      breakdown.PFDeduction,
			PFEmployer:       in.PFEmployer,
			ProfessionalTax:  breakdown.ProfessionalTax,
			TDS:              breakdown.TDS,
			TotalDeductions:  breakdown.TotalDeductions,
			NetSalary:        breakdown.NetSalary,
			Status:           StatusProcessed,
			ProcessedAt:      &processedAt,
			ProcessedBy:      &actor,
		}

		if err := s.repo.UpsertRecord(ctx, record); err != nil {
			s.logger.Error("payroll upsert failed",
				zap.String("employee_id", in.EmployeeID),
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Error(err),
			)
			result.FailedEmployeeIDs = append(result.FailedEmployeeIDs, in.EmployeeID)
			continue
		}

		result.Records = append(result.Records, mapToPayslip(*record))
		notified = append(notified, events.PayrollRunEmployee{
			EmployeeID: in.EmployeeID,
			Email:      in.Email,
		})
	}

	if len(result.Records) > 0 {
		if err := s.queueRunEvent(ctx, rid, year, month, actorID, notified); err != nil {
			// The run itself succeeded; a lost notification is logged, not fatal.
			s.logger.Error("payroll run event enqueue failed", zap.Error(err))
		}
	}

	s.logger.Info("payroll run finished",
		zap.String("request_id", rid),
		zap.Int("records", len(result.Records)),
		zap.Int("skipped", result.SkippedCount),
		zap.Int("failed", len(result.FailedEmployeeIDs)),
	)

	return result, nil
}

func (s *service) queueRunEvent(ctx context.Context, rid string, year, month int, actorID string, employees []events.PayrollRunEmployee) error {
	event := events.PayrollRunProcessedEvent{
		EventType:   "payroll_run_processed",
		RequestID:   rid,
		Year:        year,
		Month:       month,
		ProcessedBy: actorID,
		Employees:   employees,
		OccurredAt:  s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll_run",
		AggregateID:   uuid.NewString(),
		EventType:     event.EventType,
		Topic:         events.PayrollRunProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetMyPayslips(ctx context.Context, userID string) ([]PayslipResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	records, err := s.repo.ListPayslipsByEmployee(ctx, empl.ID.String())
	if err != nil {
		return nil, err
	}

	res := make([]PayslipResponse, 0, len(records))
	for _, rec := range records {
		// The repo query filters too; this guards DRAFT rows from ever leaking.
		if rec.Status != StatusProcessed && rec.Status != StatusPaid {
			continue
		}
		res = append(res, mapToPayslip(rec))
	}
	return res, nil
}

func mapToPayslip(r PayrollRecord) PayslipResponse {
	res := PayslipResponse{
		ID:               r.ID.String(),
		EmployeeID:       r.EmployeeID.String(),
		Month:            r.Month,
		Year:             r.Year,
		BasicSalary:      r.BasicSalary,
		HRA:              r.HRA,
		SpecialAllowance: r.SpecialAllowance,
		GrossSalary:      r.GrossSalary,
		PFDeduction:      r.PFDeduction,
		PFEmployer:       r.PFEmployer,
		ProfessionalTax:  r.ProfessionalTax,
		TDS:              r.TDS,
		TotalDeductions:  r.TotalDeductions,
		NetSalary:        r.NetSalary,
		Status:           r.Status,
	}
	if r.ProcessedAt != nil {
		res.ProcessedAt = r.ProcessedAt.UTC().Format(time.RFC3339)
	}
	if r.PaidAt != nil {
		res.PaidAt = r.PaidAt.UTC().Format(time.RFC3339)
	}
	return res
}
