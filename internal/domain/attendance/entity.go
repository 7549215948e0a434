package attendance

import "time"

type ArrivalStatus string

const (
	ArrivalEarly  ArrivalStatus = "Early"
	ArrivalOnTime ArrivalStatus = "On Time"
	ArrivalLate   ArrivalStatus = "Late"
	ArrivalNone   ArrivalStatus = "-"
)

// Session is one persisted clock-in/clock-out pair. ClockOut is nil
// while the session is still open.
type Session struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PunchPair carries one session's times as "hh:mm AM/PM" strings, "-"
// while open. These strings are the authoritative wire representation;
// derived output echoes them back rather than reformatting minutes.
type PunchPair struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// DayLog is one day of attendance as consumed by the derivation logic.
// CheckIn/CheckOut/BreakMinutes are the legacy single-pair fields, read
// only when Sessions is empty.
type DayLog struct {
	Date         time.Time
	Sessions     []PunchPair
	CheckIn      string
	CheckOut     string
	BreakMinutes int
	IsWeekend    bool
	IsHoliday    bool
	HolidayName  string
	LeaveType    string
	IsActive     bool
}

type SegmentType string

const (
	SegmentWork  SegmentType = "work"
	SegmentBreak SegmentType = "break"
)

// Segment is one slice of the proportional day bar. Widths are
// fractional percentages so consecutive segments tile exactly.
type Segment struct {
	Type     SegmentType `json:"type"`
	WidthPct float64     `json:"widthPct"`
}

// DayStats is derived from a DayLog, never persisted.
type DayStats struct {
	GrossMinutes           int
	BreakMinutes           int
	EffectiveMinutes       int
	Arrival                ArrivalStatus
	FormattedRange         string
	Segments               []Segment
	RequiresRegularization bool
}
