package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "github.com/BibekanandaBariki/technnext-hrms/internal/auth/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	"github.com/BibekanandaBariki/technnext-hrms/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	Me(ctx context.Context, userID string) (MeResponse, error)
}

type service struct {
	users     user.Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(users user.Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, employees: employees, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if !u.IsActive {
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	employeeID := s.resolveEmployeeID(ctx, u.ID.String())

	token, err := s.signToken(u.ID.String(), employeeID, u.Role)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))

	return LoginResponse{
		AccessToken: token,
		Role:        u.Role,
		UserID:      u.ID.String(),
		EmployeeID:  employeeID,
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		s.logger.Error("update password failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (s *service) Me(ctx context.Context, userID string) (MeResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, autherrors.ErrInvalidToken
		}
		return MeResponse{}, err
	}

	return MeResponse{
		UserID:     u.ID.String(),
		Email:      u.Email,
		Role:       u.Role,
		EmployeeID: s.resolveEmployeeID(ctx, u.ID.String()),
	}, nil
}

func (s *service) resolveEmployeeID(ctx context.Context, userID string) string {
	emp, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		// ADMIN accounts may legitimately have no employee profile.
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("resolve employee profile failed", zap.String("user_id", userID), zap.Error(err))
		}
		return ""
	}
	return emp.ID.String()
}

func (s *service) signToken(userID, employeeID, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":     userID,
		"employee_id": employeeID,
		"role":        role,
		"iat":         now.Unix(),
		"exp":         now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
