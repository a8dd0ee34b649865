package autherrors

import (
	"net/http"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/apperror"
)

// ErrInvalidCredentials deliberately covers both unknown email and
// wrong password so the response does not leak which one failed.
var ErrInvalidCredentials = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid credentials",
	http.StatusUnauthorized,
)
