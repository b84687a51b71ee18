package employee

type CreateEmployeeRequest struct {
	FirstName          string `json:"first_name" binding:"required"`
	LastName           string `json:"last_name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Phone              string `json:"phone"`
	DesignationID      string `json:"designation_id" binding:"required,uuid"`
	ReportingManagerID string `json:"reporting_manager_id" binding:"omitempty,uuid"`
	DateOfJoining      string `json:"date_of_joining" binding:"required"`
	Role               string `json:"role" binding:"omitempty,oneof=ADMIN HR EMPLOYEE"`
}

type UpdateEmployeeRequest struct {
	FirstName          string `json:"first_name" binding:"required"`
	LastName           string `json:"last_name" binding:"required"`
	Phone              string `json:"phone"`
	DesignationID      string `json:"designation_id" binding:"required,uuid"`
	ReportingManagerID string `json:"reporting_manager_id" binding:"omitempty,uuid"`
	Status             string `json:"status" binding:"omitempty,oneof=ONBOARDING ACTIVE INACTIVE TERMINATED"`
}

type EmployeeResponse struct {
	ID                 string `json:"id"`
	EmployeeCode       string `json:"employee_code"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	DepartmentID       string `json:"department_id,omitempty"`
	DesignationID      string `json:"designation_id,omitempty"`
	ReportingManagerID string `json:"reporting_manager_id,omitempty"`
	DateOfJoining      string `json:"date_of_joining"`
	Status             string `json:"status"`
}

type EmployeeOption struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}
