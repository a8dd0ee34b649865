package employee

type AddEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	EmpID       string `json:"emp_id" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type AddEmployeeResponse struct {
	Message string `json:"message"`
	EmpID   string `json:"emp_id"`
}

// EmployeeResponse is the listing shape; the stored credential is never
// part of it.
type EmployeeResponse struct {
	EmpID string `json:"emp_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
