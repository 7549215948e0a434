package response

import (
	"errors"
	"net/http"

	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/markwaveai/markwave-hr/internal/domain/auth"
	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/markwaveai/markwave-hr/internal/domain/user"
	"github.com/markwaveai/markwave-hr/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Leave gate failures carry the exact user-facing wording
	var restricted *leave.RestrictedDayError
	if errors.As(err, &restricted) {
		BadRequest(w, restricted.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNoOpenSession):
		BadRequest(w, "No open session to clock out of", nil)
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "To date must not be before from date", nil)
	case errors.Is(err, leave.ErrDuplicateLeave):
		Conflict(w, "A leave request already exists for the selected dates")
	case errors.Is(err, leave.ErrBeforeOpening):
		BadRequest(w, "Leave requests for today open at shift start", nil)
	case errors.Is(err, leave.ErrHalfDayCutoff):
		BadRequest(w, "First Half and Full Day requests for today are closed", nil)
	case errors.Is(err, leave.ErrSecondHalfCutoff):
		BadRequest(w, "Second Half requests for today are closed", nil)
	case errors.Is(err, leave.ErrNotifyRequired):
		BadRequest(w, "Select at least one person to notify", nil)
	case errors.Is(err, leave.ErrReasonRequired):
		BadRequest(w, "Reason is required", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Request belongs to another employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
