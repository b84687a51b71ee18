package attendance

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	PunchIn        string  `json:"punch_in"`
	PunchOut       string  `json:"punch_out,omitempty"`
	IsLate         bool    `json:"is_late"`
	EarlyDeparture bool    `json:"early_departure"`
	WorkHours      float64 `json:"work_hours"`
	Status         string  `json:"status"`
}

type TodayResponse struct {
	PunchedIn  bool                `json:"punched_in"`
	PunchedOut bool                `json:"punched_out"`
	Record     *AttendanceResponse `json:"record,omitempty"`
}
