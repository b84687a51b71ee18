package rbac

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

// DefaultPolicies is the fixed grant table for the three account roles.
// EMPLOYEE covers self-service operations only; row-level ownership is
// enforced by the services resolving the employee profile from the user id.
func DefaultPolicies() []RolePolicy {
	manage := func(role, resource string) []RolePolicy {
		return []RolePolicy{
			{role, resource, "create"},
			{role, resource, "read"},
			{role, resource, "update"},
			{role, resource, "delete"},
		}
	}

	var policies []RolePolicy

	for _, resource := range []string{
		"employee", "document", "attendance", "leave",
		"salary_structure", "payroll", "tax",
		"department", "designation",
	} {
		policies = append(policies, manage(RoleAdmin, resource)...)
		policies = append(policies, manage(RoleHR, resource)...)
	}

	policies = append(policies,
		RolePolicy{RoleHR, "payroll", "process"},
		RolePolicy{RoleAdmin, "payroll", "process"},
		RolePolicy{RoleHR, "dashboard", "read"},
		RolePolicy{RoleAdmin, "dashboard", "read"},
		RolePolicy{RoleHR, "document", "review"},
		RolePolicy{RoleAdmin, "document", "review"},
		RolePolicy{RoleHR, "leave", "approve"},
		RolePolicy{RoleAdmin, "leave", "approve"},

		// Self-service
		RolePolicy{RoleEmployee, "employee", "read_self"},
		RolePolicy{RoleEmployee, "attendance", "punch"},
		RolePolicy{RoleEmployee, "attendance", "read_self"},
		RolePolicy{RoleEmployee, "leave", "apply"},
		RolePolicy{RoleEmployee, "leave", "read_self"},
		RolePolicy{RoleEmployee, "document", "upload"},
		RolePolicy{RoleEmployee, "document", "read_self"},
		RolePolicy{RoleEmployee, "payroll", "read_self"},
		RolePolicy{RoleEmployee, "tax", "declare"},
		RolePolicy{RoleEmployee, "tax", "read_self"},
	)

	// HR and ADMIN are employees too and keep the self-service surface.
	for _, role := range []string{RoleAdmin, RoleHR} {
		policies = append(policies,
			RolePolicy{role, "employee", "read_self"},
			RolePolicy{role, "attendance", "punch"},
			RolePolicy{role, "attendance", "read_self"},
			RolePolicy{role, "leave", "apply"},
			RolePolicy{role, "leave", "read_self"},
			RolePolicy{role, "document", "upload"},
			RolePolicy{role, "document", "read_self"},
			RolePolicy{role, "payroll", "read_self"},
			RolePolicy{role, "tax", "declare"},
			RolePolicy{role, "tax", "read_self"},
		)
	}

	return policies
}
