package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/employees", h.List)
	r.POST("/add_employee", h.Add)
	r.DELETE("/remove_employee/:emp_id", h.Remove)
	r.POST("/admin/change_password", h.ChangePassword)
}
