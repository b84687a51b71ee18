package rbac

import (
	"sync"

	"github.com/BibekanandaBariki/technnext-hrms/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// RolePolicy is one resource/action grant for a role.
type RolePolicy struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// NewService builds an in-memory enforcer from the fixed role policy table.
// Roles are a closed set (ADMIN, HR, EMPLOYEE), so policies are loaded once
// at startup instead of per request.
func NewService(policies []RolePolicy) (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The user's role arrives in the verified JWT, so the grouping link is
	// established on the fly rather than persisted.
	if _, err := s.enforcer.AddGroupingPolicy(req.UserID, req.Role); err != nil {
		return false, err
	}
	defer s.enforcer.RemoveGroupingPolicy(req.UserID, req.Role)

	return s.enforcer.Enforce(req.UserID, req.Resource, req.Action)
}
