package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	documenterrors "github.com/BibekanandaBariki/technnext-hrms/internal/document/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	"github.com/BibekanandaBariki/technnext-hrms/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const presignTTL = 15 * time.Minute

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	PresignUpload(ctx context.Context, employeeID string, req PresignUploadRequest) (storage.UploadTarget, string, error)
	Upload(ctx context.Context, employeeID string, req UploadDocumentRequest) (DocumentResponse, error)
	ListMine(ctx context.Context, userID string) ([]DocumentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	Review(ctx context.Context, documentID, reviewerID string, req ReviewDocumentRequest) (DocumentResponse, error)
	VerificationStatus(ctx context.Context, employeeID string) (VerificationStatusResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	presigner storage.Presigner
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	presigner storage.Presigner,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		presigner: presigner,
		logger:    l,
	}
}

func (s *service) PresignUpload(ctx context.Context, employeeID string, req PresignUploadRequest) (storage.UploadTarget, string, error) {
	if !IsValidType(req.DocumentType) {
		return storage.UploadTarget{}, "", documenterrors.ErrInvalidDocumentType
	}

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return storage.UploadTarget{}, "", mapEmployeeError(err)
	}

	fileKey := fmt.Sprintf("documents/%s/%s/%s-%s",
		employeeID, req.DocumentType, uuid.NewString(), req.FileName)

	target, err := s.presigner.PresignUpload(ctx, fileKey, req.MimeType, presignTTL)
	if err != nil {
		s.logger.Error("presign upload failed", zap.String("file_key", fileKey), zap.Error(err))
		return storage.UploadTarget{}, "", err
	}

	return target, fileKey, nil
}

func (s *service) Upload(ctx context.Context, employeeID string, req UploadDocumentRequest) (DocumentResponse, error) {
	if !IsValidType(req.DocumentType) {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentType
	}

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return DocumentResponse{}, mapEmployeeError(err)
	}

	doc := &EmployeeDocument{
		ID:           uuid.New(),
		EmployeeID:   uuid.MustParse(employeeID),
		DocumentType: req.DocumentType,
		Status:       StatusPending,
		FileName:     req.FileName,
		FileKey:      req.FileKey,
		FileSize:     req.FileSize,
		MimeType:     req.MimeType,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("upload document persist failed",
			zap.String("employee_id", employeeID),
			zap.String("document_type", req.DocumentType),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("document_type", req.DocumentType),
	)

	return s.mapToResponse(ctx, *doc), nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]DocumentResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapEmployeeError(err)
	}

	return s.ListByEmployee(ctx, empl.ID.String())
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	docs, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		res = append(res, s.mapToResponse(ctx, d))
	}
	return res, nil
}

// Review settles a pending document and, when the approval completes the
// required set, flips the owner from ONBOARDING to ACTIVE inside the same
// transaction.
func (s *service) Review(ctx context.Context, documentID, reviewerID string, req ReviewDocumentRequest) (DocumentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	doc, err := qtx.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, documenterrors.ErrDocumentNotFound
		}
		return DocumentResponse{}, err
	}

	if doc.Status != StatusPending {
		return DocumentResponse{}, documenterrors.ErrAlreadyReviewed
	}

	reviewer, err := uuid.Parse(reviewerID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidReviewer
	}

	now := time.Now().UTC()
	doc.Status = req.Status
	doc.ReviewedBy = &reviewer
	doc.ReviewedAt = &now
	doc.Comments = req.Comments

	if err := qtx.Update(ctx, doc); err != nil {
		s.logger.Error("review document persist failed", zap.String("document_id", documentID), zap.Error(err))
		return DocumentResponse{}, err
	}

	if req.Status == StatusApproved {
		if err := s.maybeActivateEmployee(ctx, tx, qtx, doc.EmployeeID.String()); err != nil {
			return DocumentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DocumentResponse{}, err
	}

	s.logger.Info("document reviewed",
		zap.String("document_id", documentID),
		zap.String("status", req.Status),
		zap.String("reviewed_by", reviewerID),
	)

	return s.mapToResponse(ctx, *doc), nil
}

func (s *service) maybeActivateEmployee(ctx context.Context, tx *sql.Tx, qtx Repository, employeeID string) error {
	approved, err := qtx.ListApprovedTypes(ctx, employeeID)
	if err != nil {
		return err
	}
	if !HasAllRequiredApproved(approved) {
		return nil
	}

	emplTx := s.employees.WithTx(tx)
	empl, err := emplTx.FindByID(ctx, employeeID)
	if err != nil {
		return mapEmployeeError(err)
	}
	if empl.Status != employee.StatusOnboarding {
		return nil
	}

	if err := emplTx.UpdateStatus(ctx, employeeID, employee.StatusActive); err != nil {
		return err
	}

	s.logger.Info("employee verification complete, activating",
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) VerificationStatus(ctx context.Context, employeeID string) (VerificationStatusResponse, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return VerificationStatusResponse{}, mapEmployeeError(err)
	}

	approved, err := s.repo.ListApprovedTypes(ctx, employeeID)
	if err != nil {
		return VerificationStatusResponse{}, err
	}

	seen := make(map[string]struct{}, len(approved))
	for _, t := range approved {
		seen[t] = struct{}{}
	}

	missing := make([]string, 0)
	for _, required := range RequiredTypes {
		if _, ok := seen[required]; !ok {
			missing = append(missing, required)
		}
	}

	return VerificationStatusResponse{
		EmployeeID:    employeeID,
		Complete:      len(missing) == 0,
		MissingTypes:  missing,
		ApprovedTypes: approved,
	}, nil
}

func (s *service) mapToResponse(ctx context.Context, d EmployeeDocument) DocumentResponse {
	res := DocumentResponse{
		ID:           d.ID.String(),
		EmployeeID:   d.EmployeeID.String(),
		DocumentType: d.DocumentType,
		Status:       d.Status,
		FileName:     d.FileName,
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		Comments:     d.Comments,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
	if d.ReviewedBy != nil {
		res.ReviewedBy = d.ReviewedBy.String()
	}
	if d.ReviewedAt != nil {
		res.ReviewedAt = d.ReviewedAt.UTC().Format(time.RFC3339)
	}

	// Download links are best effort; listing still works if signing fails.
	if s.presigner != nil {
		if url, err := s.presigner.PresignDownload(ctx, d.FileKey, presignTTL); err == nil {
			res.DownloadURL = url
		}
	}
	return res
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documenterrors.ErrEmployeeNotFound
	}
	return err
}
