package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee"
	employeeerrors "github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	addFn            func(ctx context.Context, req employee.AddEmployeeRequest) (employee.AddEmployeeResponse, error)
	listFn           func(ctx context.Context) ([]employee.EmployeeResponse, error)
	removeFn         func(ctx context.Context, empID string) error
	changePasswordFn func(ctx context.Context, empID, newPassword string) error
}

func (f *fakeService) Add(ctx context.Context, req employee.AddEmployeeRequest) (employee.AddEmployeeResponse, error) {
	return f.addFn(ctx, req)
}
func (f *fakeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.listFn(ctx)
}
func (f *fakeService) Remove(ctx context.Context, empID string) error {
	return f.removeFn(ctx, empID)
}
func (f *fakeService) ChangePassword(ctx context.Context, empID, newPassword string) error {
	return f.changePasswordFn(ctx, empID, newPassword)
}

func newRouter(h *employee.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	employee.RegisterRoutes(r.Group("/"), h)
	return r
}

func TestHandler_AddAndList(t *testing.T) {
	svc := &fakeService{
		addFn: func(ctx context.Context, req employee.AddEmployeeRequest) (employee.AddEmployeeResponse, error) {
			assert.Equal(t, "Asha Verma", req.Name)
			return employee.AddEmployeeResponse{Message: "Employee added successfully", EmpID: "E001"}, nil
		},
		listFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{EmpID: "E001", Name: "Asha Verma"}}, nil
		},
	}
	r := newRouter(employee.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add_employee",
		strings.NewReader(`{"name":"Asha Verma","email":"asha@example.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"emp_id":"E001"`)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"employees"`)
}

func TestHandler_Add_ValidationError(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(employee.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add_employee", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Remove_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"admin target", employeeerrors.ErrCannotRemoveAdmin, http.StatusForbidden},
		{"unknown id", employeeerrors.ErrEmployeeNotFound, http.StatusNotFound},
		{"success", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				removeFn: func(ctx context.Context, empID string) error {
					assert.Equal(t, "E002", empID)
					return tt.err
				},
			}
			r := newRouter(employee.NewHandler(svc))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/remove_employee/E002", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_ChangePassword_NotFound(t *testing.T) {
	svc := &fakeService{
		changePasswordFn: func(ctx context.Context, empID, newPassword string) error {
			return employeeerrors.ErrEmployeeNotFound
		},
	}
	r := newRouter(employee.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/change_password",
		strings.NewReader(`{"emp_id":"E404","new_password":"newpass1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
