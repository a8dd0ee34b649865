package auth

import (
	"time"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.POST("/login", middleware.RateLimitByIP(rate.Every(time.Second), 10), h.Login)
}
