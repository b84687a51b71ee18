package rbac

import (
	"testing"

	"github.com/BibekanandaBariki/technnext-hrms/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func enforce(t *testing.T, svc Service, role, resource, action string) bool {
	t.Helper()
	allowed, err := svc.Enforce(domain.EnforceRequest{
		UserID:   uuid.New().String(),
		Role:     role,
		Resource: resource,
		Action:   action,
	})
	assert.NoError(t, err)
	return allowed
}

func TestDefaultPolicies(t *testing.T) {
	svc, err := NewService(DefaultPolicies())
	assert.NoError(t, err)

	t.Run("hr manages the directory", func(t *testing.T) {
		assert.True(t, enforce(t, svc, RoleHR, "employee", "create"))
		assert.True(t, enforce(t, svc, RoleHR, "employee", "delete"))
		assert.True(t, enforce(t, svc, RoleHR, "payroll", "process"))
		assert.True(t, enforce(t, svc, RoleHR, "document", "review"))
		assert.True(t, enforce(t, svc, RoleHR, "leave", "approve"))
		assert.True(t, enforce(t, svc, RoleHR, "dashboard", "read"))
	})

	t.Run("admin mirrors hr", func(t *testing.T) {
		assert.True(t, enforce(t, svc, RoleAdmin, "payroll", "process"))
		assert.True(t, enforce(t, svc, RoleAdmin, "salary_structure", "update"))
	})

	t.Run("employee is self-service only", func(t *testing.T) {
		assert.True(t, enforce(t, svc, RoleEmployee, "attendance", "punch"))
		assert.True(t, enforce(t, svc, RoleEmployee, "leave", "apply"))
		assert.True(t, enforce(t, svc, RoleEmployee, "payroll", "read_self"))
		assert.True(t, enforce(t, svc, RoleEmployee, "tax", "declare"))

		assert.False(t, enforce(t, svc, RoleEmployee, "employee", "create"))
		assert.False(t, enforce(t, svc, RoleEmployee, "payroll", "process"))
		assert.False(t, enforce(t, svc, RoleEmployee, "document", "review"))
		assert.False(t, enforce(t, svc, RoleEmployee, "leave", "approve"))
		assert.False(t, enforce(t, svc, RoleEmployee, "salary_structure", "read"))
		assert.False(t, enforce(t, svc, RoleEmployee, "dashboard", "read"))
	})

	t.Run("hr keeps the self-service surface", func(t *testing.T) {
		assert.True(t, enforce(t, svc, RoleHR, "attendance", "punch"))
		assert.True(t, enforce(t, svc, RoleHR, "payroll", "read_self"))
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		assert.False(t, enforce(t, svc, "CONTRACTOR", "employee", "read"))
	})
}
