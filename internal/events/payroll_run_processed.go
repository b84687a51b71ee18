package events

import "time"

const PayrollRunProcessedTopic = "hr.payroll.run.v1"

// PayrollRunEmployee identifies one employee touched by a payroll run.
type PayrollRunEmployee struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
}

// PayrollRunProcessedEvent is emitted once per completed monthly run so the
// notification consumer can tell employees their payslip is ready.
type PayrollRunProcessedEvent struct {
	EventType   string               `json:"event_type"`
	RequestID   string               `json:"request_id,omitempty"`
	Year        int                  `json:"year"`
	Month       int                  `json:"month"`
	ProcessedBy string               `json:"processed_by"`
	Employees   []PayrollRunEmployee `json:"employees"`
	OccurredAt  time.Time            `json:"occurred_at"`
}
