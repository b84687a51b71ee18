package salarystructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	salarystructureerrors "github.com/BibekanandaBariki/technnext-hrms/internal/salarystructure/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_structure_service.go -destination=mock/salary_structure_service_mock.go -package=mock
type Service interface {
	Set(ctx context.Context, employeeID, actorID string, req SetSalaryStructureRequest) (SalaryStructureResponse, error)
	Get(ctx context.Context, employeeID string) (*SalaryStructureResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) Set(ctx context.Context, employeeID, actorID string, req SetSalaryStructureRequest) (SalaryStructureResponse, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryStructureResponse{}, salarystructureerrors.ErrEmployeeNotFound
		}
		return SalaryStructureResponse{}, err
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveFrom
	}

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidActor
	}

	structure := &SalaryStructure{
		ID:               uuid.New(),
		EmployeeID:       uuid.MustParse(employeeID),
		CTC:              req.CTC,
		BasicSalary:      req.BasicSalary,
		HRA:              req.HRA,
		SpecialAllowance: req.SpecialAllowance,
		PFEmployer:       req.PFEmployer,
		PFEmployee:       req.PFEmployee,
		ProfessionalTax:  req.ProfessionalTax,
		EffectiveFrom:    effectiveFrom,
		CreatedBy:        actor,
	}

	if err := s.repo.Upsert(ctx, structure); err != nil {
		s.logger.Error("set salary structure failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	s.logger.Info("salary structure set",
		zap.String("employee_id", employeeID),
		zap.String("set_by", actorID),
	)

	// Re-read so an update returns the row that actually won the upsert.
	saved, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	return mapToResponse(*saved), nil
}

// Get returns nil without error when no structure exists; callers render that
// as a 200 with null data.
func (s *service) Get(ctx context.Context, employeeID string) (*SalaryStructureResponse, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salarystructureerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	structure, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := mapToResponse(*structure)
	return &resp, nil
}

func mapToResponse(s SalaryStructure) SalaryStructureResponse {
	res := SalaryStructureResponse{
		ID:               s.ID.String(),
		EmployeeID:       s.EmployeeID.String(),
		CTC:              s.CTC,
		BasicSalary:      s.BasicSalary,
		HRA:              s.HRA,
		SpecialAllowance: s.SpecialAllowance,
		PFEmployer:       s.PFEmployer,
		PFEmployee:       s.PFEmployee,
		ProfessionalTax:  s.ProfessionalTax,
		EffectiveFrom:    s.EffectiveFrom.Format("2006-01-02"),
	}
	if s.CreatedBy != uuid.Nil {
		res.CreatedBy = s.CreatedBy.String()
	}
	return res
}
