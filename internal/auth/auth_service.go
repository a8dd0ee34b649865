package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	autherrors "github.com/Assetizer-RealTech-Private-Limited/ERP/internal/auth/errors"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
}

type service struct {
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	emp, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(emp.Password)) != 1 {
		s.logger.Warn("login rejected",
			zap.String("request_id", rid),
			zap.String("email", email),
		)
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	s.logger.Info("login accepted",
		zap.String("request_id", rid),
		zap.String("emp_id", emp.EmpID),
	)
	return LoginResponse{
		Message: "Login successful",
		EmpID:   emp.EmpID,
		Role:    emp.Role,
		Name:    emp.Name,
	}, nil
}
