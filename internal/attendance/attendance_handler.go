package attendance

import (
	"net/http"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/apperror"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.check(c, ActionCheckIn)
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.check(c, ActionCheckOut)
}

func (h *Handler) check(c *gin.Context, action string) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Check(c.Request.Context(), req.EmpID, action, c.ClientIP())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) History(c *gin.Context) {
	empID := c.Param("emp_id")

	records, err := h.service.History(c.Request.Context(), empID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, HistoryResponse{Records: records})
}
