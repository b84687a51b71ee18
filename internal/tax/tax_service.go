package tax

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	taxerrors "github.com/BibekanandaBariki/technnext-hrms/internal/tax/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var financialYearPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

//go:generate mockgen -source=tax_service.go -destination=mock/tax_service_mock.go -package=mock
type Service interface {
	Declare(ctx context.Context, userID string, req DeclareTaxRequest) (TaxDeclarationResponse, error)
	ListMine(ctx context.Context, userID string) ([]TaxDeclarationResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("tax.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tax.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

// Declare upserts the declaration for the financial year and resets it to
// DRAFT, so edits after submission always require a fresh review.
func (s *service) Declare(ctx context.Context, userID string, req DeclareTaxRequest) (TaxDeclarationResponse, error) {
	if !financialYearPattern.MatchString(req.FinancialYear) {
		return TaxDeclarationResponse{}, taxerrors.ErrInvalidFinancialYear
	}

	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaxDeclarationResponse{}, taxerrors.ErrEmployeeNotFound
		}
		return TaxDeclarationResponse{}, err
	}

	decl := &TaxDeclaration{
		ID:              uuid.New(),
		EmployeeID:      empl.ID,
		FinancialYear:   req.FinancialYear,
		Section80C:      req.Section80C,
		Section80D:      req.Section80D,
		HRAClaimed:      req.HRAClaimed,
		OtherDeductions: req.OtherDeductions,
		Status:          StatusDraft,
	}

	if err := s.repo.Upsert(ctx, decl); err != nil {
		s.logger.Error("declare tax persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.String("financial_year", req.FinancialYear),
			zap.Error(err),
		)
		return TaxDeclarationResponse{}, err
	}

	saved, err := s.repo.FindByEmployeeAndYear(ctx, empl.ID.String(), req.FinancialYear)
	if err != nil {
		return TaxDeclarationResponse{}, err
	}

	s.logger.Info("tax declaration saved",
		zap.String("employee_id", empl.ID.String()),
		zap.String("financial_year", req.FinancialYear),
	)
	return mapToResponse(*saved), nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]TaxDeclarationResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taxerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	decls, err := s.repo.FindByEmployee(ctx, empl.ID.String())
	if err != nil {
		return nil, err
	}

	res := make([]TaxDeclarationResponse, 0, len(decls))
	for _, d := range decls {
		res = append(res, mapToResponse(d))
	}
	return res, nil
}

func mapToResponse(d TaxDeclaration) TaxDeclarationResponse {
	return TaxDeclarationResponse{
		ID:              d.ID.String(),
		EmployeeID:      d.EmployeeID.String(),
		FinancialYear:   d.FinancialYear,
		Section80C:      d.Section80C,
		Section80D:      d.Section80D,
		HRAClaimed:      d.HRAClaimed,
		OtherDeductions: d.OtherDeductions,
		Status:          d.Status,
		UpdatedAt:       d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
