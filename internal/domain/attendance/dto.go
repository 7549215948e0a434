package attendance

import (
	"time"

	"github.com/markwaveai/markwave-hr/internal/pkg/validator"
)

type LogsFilter struct {
	From string
	To   string
}

func (f LogsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.From) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "From date is required"})
	} else if _, ok := validator.IsValidDate(f.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "From date must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(f.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "To date is required"})
	} else if _, ok := validator.IsValidDate(f.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "To date must be YYYY-MM-DD"})
	}

	if len(errs) == 0 {
		from, _ := validator.IsValidDate(f.From)
		to, _ := validator.IsValidDate(f.To)
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "To date must not be before from date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed filter bounds. Call Validate first.
func (f LogsFilter) Range() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(f.From)
	to, _ := validator.IsValidDate(f.To)
	return from, to
}

type SummaryWindow string

const (
	WindowToday SummaryWindow = "Today"
	WindowWeek  SummaryWindow = "This Week"
	WindowMonth SummaryWindow = "This Month"
)

func ParseSummaryWindow(s string) (SummaryWindow, bool) {
	switch SummaryWindow(s) {
	case WindowToday, WindowWeek, WindowMonth:
		return SummaryWindow(s), true
	case "":
		return WindowToday, true
	}
	return "", false
}

// DayLogResponse is one day on the wire, raw punches plus derived stats.
type DayLogResponse struct {
	Date                   string        `json:"date"`
	CheckIn                string        `json:"checkIn"`
	CheckOut               string        `json:"checkOut"`
	Logs                   []PunchPair   `json:"logs"`
	IsHoliday              bool          `json:"isHoliday"`
	HolidayName            string        `json:"holidayName,omitempty"`
	IsWeekend              bool          `json:"isWeekend"`
	LeaveType              string        `json:"leaveType,omitempty"`
	IsActive               bool          `json:"is_active"`
	GrossMinutes           int           `json:"grossMinutes"`
	BreakMinutes           int           `json:"breakMinutes"`
	EffectiveMinutes       int           `json:"effectiveMinutes"`
	EffectiveFormatted     string        `json:"effectiveFormatted"`
	ArrivalStatus          ArrivalStatus `json:"arrivalStatus"`
	FormattedRange         string        `json:"formattedRange"`
	VisualSegments         []Segment     `json:"visualSegments"`
	RequiresRegularization bool          `json:"requiresRegularization"`
}

type SummaryResponse struct {
	Window           SummaryWindow `json:"window"`
	PresentDays      int           `json:"presentDays"`
	AvgMinutesPerDay int           `json:"avgMinutesPerDay"`
	AvgFormatted     string        `json:"avgFormatted"`
	OnTimePercent    int           `json:"onTimePercent"`
}
