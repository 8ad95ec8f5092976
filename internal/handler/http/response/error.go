package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/directory"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/session"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound), errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTooManyAttempts):
		TooManyRequests(w, err.Error())
	case errors.Is(err, session.ErrNoSession):
		Unauthorized(w, "Sign in required")
	case errors.Is(err, directory.ErrManagerNotListed):
		NotFound(w, "Manager not listed in the directory")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound), errors.Is(err, adjustment.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRosterEmpty):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrAlreadyImported):
		Conflict(w, err.Error())

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")
	case errors.Is(err, adjustment.ErrSaveFailed):
		InternalServerError(w, "Failed to save adjustment")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
