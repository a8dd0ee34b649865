package passwordreset

import (
	"time"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// OTP issuance is throttled per client IP; verification and reset stay
// unthrottled so a user with a valid code is never locked out of finishing.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	otpLimiter := middleware.RateLimitByIP(rate.Every(time.Minute), 5)

	r.POST("/forgot_password", otpLimiter, h.ForgotPassword)
	r.POST("/verify_otp", h.VerifyOTP)
	r.POST("/reset_password", h.ResetPassword)
	r.GET("/requests", h.ListRequests)
}
