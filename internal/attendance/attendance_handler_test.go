package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/attendance"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	checkFn   func(ctx context.Context, empID, action, sourceIP string) (attendance.CheckResponse, error)
	historyFn func(ctx context.Context, empID string) ([]attendance.DayRecord, error)
}

func (f *fakeService) Check(ctx context.Context, empID, action, sourceIP string) (attendance.CheckResponse, error) {
	return f.checkFn(ctx, empID, action, sourceIP)
}
func (f *fakeService) History(ctx context.Context, empID string) ([]attendance.DayRecord, error) {
	return f.historyFn(ctx, empID)
}

func newRouter(h *attendance.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	attendance.RegisterRoutes(r.Group("/"), h)
	return r
}

func TestHandler_CheckInAndCheckOut(t *testing.T) {
	var gotAction string
	svc := &fakeService{
		checkFn: func(ctx context.Context, empID, action, sourceIP string) (attendance.CheckResponse, error) {
			assert.Equal(t, "E001", empID)
			gotAction = action
			return attendance.CheckResponse{Message: "recorded", IP: sourceIP, Location: "Unknown"}, nil
		},
	}
	r := newRouter(attendance.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkin", strings.NewReader(`{"emp_id":"E001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, attendance.ActionCheckIn, gotAction)
	assert.Contains(t, w.Body.String(), `"location"`)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"emp_id":"E001"}`))
	req2.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, attendance.ActionCheckOut, gotAction)
}

func TestHandler_Check_MissingEmpID(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(attendance.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkin", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_History(t *testing.T) {
	svc := &fakeService{
		historyFn: func(ctx context.Context, empID string) ([]attendance.DayRecord, error) {
			assert.Equal(t, "E001", empID)
			in := "09:00:00"
			return []attendance.DayRecord{{Date: "2026-08-25", CheckIn: &in}}, nil
		},
	}
	r := newRouter(attendance.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance/E001", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"records"`)
	assert.Contains(t, w.Body.String(), `"check_out":null`)
}
