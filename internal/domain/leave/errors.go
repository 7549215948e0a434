package leave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange    = errors.New("to date must not be before from date")
	ErrDuplicateLeave      = errors.New("leave already exists for the selected dates")
	ErrBeforeOpening       = errors.New("requests for today open at shift start")
	ErrHalfDayCutoff       = errors.New("first half and full day requests for today are closed")
	ErrSecondHalfCutoff    = errors.New("second half requests for today are closed")
	ErrNotifyRequired      = errors.New("at least one person to notify is required")
	ErrReasonRequired      = errors.New("reason is required")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrUnknownLeaveType    = errors.New("unknown leave type")
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrAlreadyProcessed    = errors.New("request already processed")
	ErrNotRequestOwner     = errors.New("request belongs to another employee")
)

// RestrictedDayError reports the first Sunday or holiday found inside a
// requested date range, with the wording surfaced to the employee.
type RestrictedDayError struct {
	Date        string // YYYY-MM-DD
	HolidayName string // empty when the date is a Sunday
}

func (e *RestrictedDayError) Error() string {
	if e.HolidayName != "" {
		return fmt.Sprintf("Cannot apply leave on Sundays or Public Holidays. %s is a Holiday (%s).", e.Date, e.HolidayName)
	}
	return fmt.Sprintf("Cannot apply leave on Sundays or Public Holidays. %s is a Sunday.", e.Date)
}
