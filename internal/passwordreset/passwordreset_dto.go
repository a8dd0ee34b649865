package passwordreset

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ForgotPasswordResponse carries the code inline only when delivery
// failed; confidentiality is traded for availability in that case.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ResetRequestResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Delivered   bool   `json:"delivered"`
	RequestedAt string `json:"requested_at"`
}

type ListRequestsResponse struct {
	Requests []ResetRequestResponse `json:"requests"`
}
