package leave

import (
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/holiday"
	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/markwaveai/markwave-hr/internal/pkg/validator"
)

// Cutoffs are the same-day submission windows, as minutes of day.
type Cutoffs struct {
	OpeningMinute    int // requests for today open at shift start
	HalfDayMinute    int // First Half / Full Day close after this
	SecondHalfMinute int // Second Half closes at this
}

// Candidate is a leave request as it stands at submission time.
type Candidate struct {
	FromDate    time.Time
	ToDate      time.Time
	FromSession leave.SessionChoice
	ToSession   leave.SessionChoice
	Reason      string
	NotifyTo    []string
}

// EligibilityValidator decides whether a request may be submitted. Each
// gate is independent and pure over its inputs; Admit composes them and
// returns the first categorized failure.
type EligibilityValidator struct {
	cutoffs Cutoffs
}

func NewEligibilityValidator(cutoffs Cutoffs) *EligibilityValidator {
	return &EligibilityValidator{cutoffs: cutoffs}
}

// IsDateDisabled reports whether a single date can never hold leave:
// Sundays and exact-date holiday matches.
func (v *EligibilityValidator) IsDateDisabled(date time.Time, holidays holiday.Calendar) bool {
	if date.Weekday() == time.Sunday {
		return true
	}
	_, isHoliday := holidays.NameOn(date)
	return isHoliday
}

// HasRestrictedDays walks the inclusive range and reports whether any
// day is disabled. Informational twin of the hard check in Admit.
func (v *EligibilityValidator) HasRestrictedDays(c Candidate, holidays holiday.Calendar) bool {
	for d := dateOnly(c.FromDate); !d.After(dateOnly(c.ToDate)); d = d.AddDate(0, 0, 1) {
		if v.IsDateDisabled(d, holidays) {
			return true
		}
	}
	return false
}

// CheckTimeRestriction applies the same-day cutoffs. Future from-dates
// are never restricted.
func (v *EligibilityValidator) CheckTimeRestriction(fromDate time.Time, fromSession leave.SessionChoice, now time.Time) error {
	if !sameDate(fromDate, now) {
		return nil
	}

	nowMinute := now.Hour()*60 + now.Minute()
	if nowMinute < v.cutoffs.OpeningMinute {
		return leave.ErrBeforeOpening
	}

	switch fromSession {
	case leave.SessionFirstHalf, leave.SessionFullDay:
		if nowMinute > v.cutoffs.HalfDayMinute {
			return leave.ErrHalfDayCutoff
		}
	case leave.SessionSecondHalf:
		if nowMinute >= v.cutoffs.SecondHalfMinute {
			return leave.ErrSecondHalfCutoff
		}
	}
	return nil
}

// IsDuplicate reports whether the candidate's inclusive interval
// overlaps any history entry that still counts.
func (v *EligibilityValidator) IsDuplicate(c Candidate, history []leave.Request) bool {
	from := dateOnly(c.FromDate)
	to := dateOnly(c.ToDate)
	for _, h := range history {
		if !h.Status.Counted() {
			continue
		}
		if !from.After(dateOnly(h.ToDate)) && !to.Before(dateOnly(h.FromDate)) {
			return true
		}
	}
	return false
}

// Admit runs every gate and returns nil only when the request may be
// submitted. The restricted-day walk stops at the first disabled day in
// date order and names the reason, Sunday or a specific holiday.
func (v *EligibilityValidator) Admit(c Candidate, history []leave.Request, holidays holiday.Calendar, now time.Time) error {
	if dateOnly(c.ToDate).Before(dateOnly(c.FromDate)) {
		return leave.ErrInvalidDateRange
	}
	if validator.IsEmpty(c.Reason) {
		return leave.ErrReasonRequired
	}
	if len(c.NotifyTo) == 0 {
		return leave.ErrNotifyRequired
	}

	for d := dateOnly(c.FromDate); !d.After(dateOnly(c.ToDate)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			return &leave.RestrictedDayError{Date: d.Format("2006-01-02")}
		}
		if name, ok := holidays.NameOn(d); ok {
			return &leave.RestrictedDayError{Date: d.Format("2006-01-02"), HolidayName: name}
		}
	}

	if err := v.CheckTimeRestriction(c.FromDate, c.FromSession, now); err != nil {
		return err
	}

	if v.IsDuplicate(c, history) {
		return leave.ErrDuplicateLeave
	}

	return nil
}

// CheckSoftDisabled mirrors the pre-submit button state: true when any
// gate would currently stop the request. Admit remains the authority.
func (v *EligibilityValidator) CheckSoftDisabled(c Candidate, history []leave.Request, holidays holiday.Calendar, now time.Time) bool {
	if c.FromDate.IsZero() || validator.IsEmpty(c.Reason) {
		return true
	}
	if v.IsDateDisabled(c.FromDate, holidays) || v.IsDateDisabled(c.ToDate, holidays) {
		return true
	}
	if v.CheckTimeRestriction(c.FromDate, c.FromSession, now) != nil {
		return true
	}
	return v.IsDuplicate(c, history)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
