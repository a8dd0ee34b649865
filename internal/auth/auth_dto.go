package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	EmpID   string `json:"emp_id"`
	Role    string `json:"role"`
	Name    string `json:"name"`
}
