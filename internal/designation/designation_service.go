package designation

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	designationerrors "github.com/BibekanandaBariki/technnext-hrms/internal/designation/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	GetAll(ctx context.Context) ([]DesignationResponse, error)
	GetByID(ctx context.Context, id string) (DesignationResponse, error)
	Update(ctx context.Context, id string, req UpdateDesignationRequest) (DesignationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("designation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("designation.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error) {
	exists, err := s.repo.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return DesignationResponse{}, err
	}
	if !exists {
		return DesignationResponse{}, designationerrors.ErrDepartmentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	desig := &Designation{
		ID:           uuid.New(),
		Name:         req.Name,
		DepartmentID: uuid.MustParse(req.DepartmentID),
	}

	if err := qtx.Create(ctx, desig); err != nil {
		s.logger.Error("create designation failed", zap.String("name", req.Name), zap.Error(err))
		return DesignationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	s.logger.Info("designation created", zap.String("designation_id", desig.ID.String()))
	return mapToResponse(*desig), nil
}

func (s *service) GetAll(ctx context.Context) ([]DesignationResponse, error) {
	desigs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(desigs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DesignationResponse, error) {
	desig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DesignationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*desig), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDesignationRequest) (DesignationResponse, error) {
	exists, err := s.repo.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return DesignationResponse{}, err
	}
	if !exists {
		return DesignationResponse{}, designationerrors.ErrDepartmentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	desig, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DesignationResponse{}, mapRepositoryError(err)
	}

	desig.Name = req.Name
	desig.DepartmentID = uuid.MustParse(req.DepartmentID)
	desig.Department = nil

	if err := qtx.Update(ctx, desig); err != nil {
		s.logger.Error("update designation failed", zap.String("designation_id", id), zap.Error(err))
		return DesignationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	return mapToResponse(*desig), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete designation failed", zap.String("designation_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("designation deleted", zap.String("designation_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return designationerrors.ErrDesignationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_designation_name" {
			return designationerrors.ErrDesignationNameTaken
		}
	}

	if msg := strings.ToLower(err.Error()); strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_designation_name") {
		return designationerrors.ErrDesignationNameTaken
	}

	return err
}

func mapToResponse(d Designation) DesignationResponse {
	res := DesignationResponse{
		ID:           d.ID.String(),
		Name:         d.Name,
		DepartmentID: d.DepartmentID.String(),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.Department != nil {
		res.DepartmentName = d.Department.Name
	}
	return res
}

func mapToListResponse(desigs []Designation) []DesignationResponse {
	res := make([]DesignationResponse, 0, len(desigs))
	for _, d := range desigs {
		res = append(res, mapToResponse(d))
	}
	return res
}
