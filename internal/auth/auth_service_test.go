package auth

import (
	"context"
	"database/sql"
	"os"
	"testing"

	autherrors "github.com/BibekanandaBariki/technnext-hrms/internal/auth/errors"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	"github.com/BibekanandaBariki/technnext-hrms/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	findByEmailFn        func(ctx context.Context, email string) (*user.User, error)
	findByIDFn           func(ctx context.Context, id string) (*user.User, error)
	updatePasswordHashFn func(ctx context.Context, id string, passwordHash string) error
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) user.Repository              { return f }
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	return f.updatePasswordHashFn(ctx, id, passwordHash)
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

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:           uuid.New(),
		Email:        "asha.verma@technnext.com",
		PasswordHash: string(hash),
		Role:         user.RoleHR,
		IsActive:     true,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := activeUser(t, "s3cret!pass")
	empl := &employee.Employee{ID: uuid.New()}

	users := &fakeUserRepo{}
	users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		assert.Equal(t, u.Email, email)
		return u, nil
	}

	svc := NewService(users, &fakeEmployeeRepo{empl: empl})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "s3cret!pass"})
	assert.NoError(t, err)
	assert.Equal(t, u.ID.String(), resp.UserID)
	assert.Equal(t, empl.ID.String(), resp.EmployeeID)
	assert.Equal(t, user.RoleHR, resp.Role)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, empl.ID.String(), claims["employee_id"])
	assert.Equal(t, user.RoleHR, claims["role"])
}

func TestService_Login_AdminWithoutProfile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := activeUser(t, "s3cret!pass")
	u.Role = user.RoleAdmin

	users := &fakeUserRepo{}
	users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}

	svc := NewService(users, &fakeEmployeeRepo{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "s3cret!pass"})
	assert.NoError(t, err)
	assert.Empty(t, resp.EmployeeID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	u := activeUser(t, "s3cret!pass")

	users := &fakeUserRepo{}
	users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}

	svc := NewService(users, &fakeEmployeeRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "not-the-password"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := &fakeUserRepo{}
	users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(users, &fakeEmployeeRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@technnext.com", Password: "whatever"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_InactiveUser(t *testing.T) {
	u := activeUser(t, "s3cret!pass")
	u.IsActive = false

	users := &fakeUserRepo{}
	users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}

	svc := NewService(users, &fakeEmployeeRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "s3cret!pass"})
	assert.ErrorIs(t, err, autherrors.ErrUserInactive)
}

func TestService_ChangePassword(t *testing.T) {
	u := activeUser(t, "old-password")

	var newHash string
	users := &fakeUserRepo{}
	users.findByIDFn = func(ctx context.Context, id string) (*user.User, error) { return u, nil }
	users.updatePasswordHashFn = func(ctx context.Context, id string, passwordHash string) error {
		newHash = passwordHash
		return nil
	}

	svc := NewService(users, &fakeEmployeeRepo{})

	err := svc.ChangePassword(context.Background(), u.ID.String(), ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password-1",
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password-1")))
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	u := activeUser(t, "old-password")

	users := &fakeUserRepo{}
	users.findByIDFn = func(ctx context.Context, id string) (*user.User, error) { return u, nil }

	svc := NewService(users, &fakeEmployeeRepo{})

	err := svc.ChangePassword(context.Background(), u.ID.String(), ChangePasswordRequest{
		CurrentPassword: "guess",
		NewPassword:     "new-password-1",
	})
	assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
}

func TestService_Me(t *testing.T) {
	u := activeUser(t, "s3cret!pass")
	empl := &employee.Employee{ID: uuid.New()}

	users := &fakeUserRepo{}
	users.findByIDFn = func(ctx context.Context, id string) (*user.User, error) { return u, nil }

	svc := NewService(users, &fakeEmployeeRepo{empl: empl})

	resp, err := svc.Me(context.Background(), u.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, u.Email, resp.Email)
	assert.Equal(t, empl.ID.String(), resp.EmployeeID)
}
