package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee"
	employeeerrors "github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee/errors"
	employeeMock "github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(db, repo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestService_Add_FirstEmployeeGetsE001(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.redisMock.ExpectDel("employees:list").SetVal(1)

	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindLastEmpID(gomock.Any()).Return("", gorm.ErrRecordNotFound)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, "E001", e.EmpID)
			assert.Equal(t, employee.RoleEmployee, e.Role)
			return nil
		})

	resp, err := d.service.Add(ctx, employee.AddEmployeeRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "E001", resp.EmpID)
	assert.Equal(t, "Employee added successfully", resp.Message)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestService_Add_IncrementsLastID(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.redisMock.ExpectDel("employees:list").SetVal(1)

	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindLastEmpID(gomock.Any()).Return("E001", nil)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, "E002", e.EmpID)
			return nil
		})

	resp, err := d.service.Add(ctx, employee.AddEmployeeRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "E002", resp.EmpID)
}

func TestService_Add_ZeroPadsAcrossBoundary(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.redisMock.ExpectDel("employees:list").SetVal(1)

	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindLastEmpID(gomock.Any()).Return("E099", nil)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, "E100", e.EmpID)
			return nil
		})

	_, err := d.service.Add(ctx, employee.AddEmployeeRequest{
		Name:     "Neha Singh",
		Email:    "neha@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
}

func TestService_Remove_AdminIsForbidden(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.repo.EXPECT().FindByEmpID(gomock.Any(), "E001").Return(&employee.Employee{
		EmpID: "E001",
		Role:  employee.RoleAdmin,
	}, nil)

	err := d.service.Remove(ctx, "E001")
	assert.ErrorIs(t, err, employeeerrors.ErrCannotRemoveAdmin)
}

func TestService_Remove_UnknownIDIsNotFound(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.repo.EXPECT().FindByEmpID(gomock.Any(), "E999").Return(nil, gorm.ErrRecordNotFound)

	err := d.service.Remove(ctx, "E999")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_Remove_Success(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.redisMock.ExpectDel("employees:list").SetVal(1)

	d.repo.EXPECT().FindByEmpID(gomock.Any(), "E002").Return(&employee.Employee{
		EmpID: "E002",
		Role:  employee.RoleEmployee,
	}, nil)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().Delete(gomock.Any(), "E002").Return(nil)

	err := d.service.Remove(ctx, "E002")
	assert.NoError(t, err)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestService_List_OmitsPasswordAndCaches(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	rows := []employee.Employee{
		{EmpID: "E001", Name: "Asha Verma", Email: "asha@example.com", Password: "secret1", Role: employee.RoleAdmin},
		{EmpID: "E002", Name: "Ravi Kumar", Email: "ravi@example.com", Password: "secret2", Role: employee.RoleEmployee},
	}
	expected := []employee.EmployeeResponse{
		{EmpID: "E001", Name: "Asha Verma", Email: "asha@example.com", Role: employee.RoleAdmin},
		{EmpID: "E002", Name: "Ravi Kumar", Email: "ravi@example.com", Role: employee.RoleEmployee},
	}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	d.redisMock.ExpectGet("employees:list").RedisNil()
	d.redisMock.ExpectSet("employees:list", payload, 5*time.Minute).SetVal("OK")

	d.repo.EXPECT().FindAll(gomock.Any()).Return(rows, nil)

	resp, err := d.service.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, resp)

	raw, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret1")
}

func TestService_ChangePassword_NotFound(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.repo.EXPECT().FindByEmpID(gomock.Any(), "E404").Return(nil, gorm.ErrRecordNotFound)

	err := d.service.ChangePassword(ctx, "E404", "newpass1")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_ChangePassword_Success(t *testing.T) {
	d := setupServiceTest(t)
	ctx := context.Background()

	d.repo.EXPECT().FindByEmpID(gomock.Any(), "E002").Return(&employee.Employee{EmpID: "E002"}, nil)
	d.repo.EXPECT().UpdatePasswordByEmpID(gomock.Any(), "E002", "newpass1").Return(nil)

	assert.NoError(t, d.service.ChangePassword(ctx, "E002", "newpass1"))
}
