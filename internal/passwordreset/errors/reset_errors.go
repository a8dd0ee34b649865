package reseterrors

import (
	"net/http"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/apperror"
)

var (
	ErrEmailNotFound = apperror.New(
		apperror.CodeNotFound,
		"Email not found",
		http.StatusNotFound,
	)

	// The verification failures all map to 400: the caller supplied a
	// usable request, the challenge state just does not admit it.
	ErrNoChallenge = apperror.New(
		apperror.CodeNotFound,
		"No OTP found for this email",
		http.StatusBadRequest,
	)
	ErrOTPExpired = apperror.New(
		apperror.CodeInvalidState,
		"OTP expired",
		http.StatusBadRequest,
	)
	ErrOTPMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid OTP",
		http.StatusBadRequest,
	)
)
