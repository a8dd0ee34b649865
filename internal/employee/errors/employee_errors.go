package employeeerrors

import (
	"net/http"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailNotFound = apperror.New(
		apperror.CodeNotFound,
		"Email not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrCannotRemoveAdmin = apperror.New(
		apperror.CodeForbidden,
		"Cannot remove admin user",
		http.StatusForbidden,
	)
	ErrInvalidEmpID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
