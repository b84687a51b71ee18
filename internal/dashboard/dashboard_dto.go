package dashboard

type AdminStatsResponse struct {
	TotalEmployees    int64 `json:"total_employees"`
	ActiveEmployees   int64 `json:"active_employees"`
	PendingOnboarding int64 `json:"pending_onboarding"`
	PendingDocuments  int64 `json:"pending_documents"`
	PayrollDraft      int64 `json:"payroll_draft"`
	PayrollProcessed  int64 `json:"payroll_processed"`
	PayrollPaid       int64 `json:"payroll_paid"`
	OnLeaveToday      int64 `json:"on_leave_today"`
}
