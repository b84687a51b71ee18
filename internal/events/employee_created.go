package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

// EmployeeCreatedEvent announces a freshly onboarded employee. The temporary
// password travels with the event so the onboarding-email consumer can deliver
// it; it is invalidated on first login.
type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	TempPassword string    `json:"temp_password"`
	OccurredAt   time.Time `json:"occurred_at"`
}
