package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/checkin", h.CheckIn)
	r.POST("/checkout", h.CheckOut)
	r.GET("/attendance/:emp_id", h.History)
}
