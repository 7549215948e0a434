package attendance

import (
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/markwaveai/markwave-hr/internal/pkg/timefmt"
)

// Rules are the company-wide shift parameters the calculator classifies
// against.
type Rules struct {
	ShiftStartMinute  int
	EarlyGraceMinutes int
	DefaultShiftLabel string
}

// DayCalculator derives per-day stats from raw punch pairs. It is pure:
// every method is a function of its arguments only.
type DayCalculator struct {
	rules Rules
}

func NewDayCalculator(rules Rules) *DayCalculator {
	return &DayCalculator{rules: rules}
}

// Derive computes one day's stats. now is consulted only when the log's
// date is today and the last session is still open; the running session
// is then measured against the current wall clock without being treated
// as a persisted close.
func (c *DayCalculator) Derive(log attendance.DayLog, now time.Time) attendance.DayStats {
	checkInStr, checkOutStr := boundaryStrings(log)

	checkIn, hasCheckIn := timefmt.ParseMinutes(checkInStr)
	if !hasCheckIn {
		return attendance.DayStats{
			Arrival:        attendance.ArrivalNone,
			FormattedRange: c.categoryLabel(log),
		}
	}

	checkOut, hasCheckOut := timefmt.ParseMinutes(checkOutStr)
	if !hasCheckOut && sameDate(log.Date, now) {
		checkOut = now.Hour()*60 + now.Minute()
		hasCheckOut = true
	}

	gross := 0
	if hasCheckOut && checkOut > 0 {
		gross = checkOut - checkIn
	}

	breaks := c.breakMinutes(log)
	effective := gross - breaks
	if effective < 0 {
		effective = 0
	}

	rangeOut := "--"
	if _, ok := timefmt.Parse(checkOutStr); ok {
		rangeOut = checkOutStr
	}

	return attendance.DayStats{
		GrossMinutes:           gross,
		BreakMinutes:           breaks,
		EffectiveMinutes:       effective,
		Arrival:                c.arrival(checkIn),
		FormattedRange:         checkInStr + " - " + rangeOut,
		Segments:               c.VisualSegments(log, now),
		RequiresRegularization: requiresRegularization(log, now),
	}
}

// VisualSegments builds the proportional work/break bar for one day.
// The span runs from the first clock-in to the last clock-out, or to
// now while the day is still open. Widths stay fractional so the
// segments tile to 100%.
func (c *DayCalculator) VisualSegments(log attendance.DayLog, now time.Time) []attendance.Segment {
	sessions := log.Sessions
	if len(sessions) == 0 {
		if _, ok := timefmt.Parse(log.CheckIn); !ok {
			return nil
		}
		sessions = []attendance.PunchPair{{In: log.CheckIn, Out: log.CheckOut}}
	}

	nowMinute := now.Hour()*60 + now.Minute()

	first, ok := timefmt.ParseMinutes(sessions[0].In)
	if !ok {
		return nil
	}
	last, ok := timefmt.ParseMinutes(sessions[len(sessions)-1].Out)
	if !ok {
		last = nowMinute
	}

	span := last - first
	if span < 1 {
		span = 1
	}

	var segments []attendance.Segment
	prevOut := 0
	for i, s := range sessions {
		in, ok := timefmt.ParseMinutes(s.In)
		if !ok {
			continue
		}
		out, ok := timefmt.ParseMinutes(s.Out)
		if !ok {
			out = nowMinute
		}

		if i > 0 {
			if gap := in - prevOut; gap > 0 {
				segments = append(segments, attendance.Segment{
					Type:     attendance.SegmentBreak,
					WidthPct: float64(gap) / float64(span) * 100,
				})
			}
		}

		segments = append(segments, attendance.Segment{
			Type:     attendance.SegmentWork,
			WidthPct: float64(out-in) / float64(span) * 100,
		})
		prevOut = out
	}

	return segments
}

func (c *DayCalculator) arrival(checkInMinutes int) attendance.ArrivalStatus {
	switch {
	case checkInMinutes > c.rules.ShiftStartMinute:
		return attendance.ArrivalLate
	case checkInMinutes < c.rules.ShiftStartMinute-c.rules.EarlyGraceMinutes:
		return attendance.ArrivalEarly
	default:
		return attendance.ArrivalOnTime
	}
}

func (c *DayCalculator) categoryLabel(log attendance.DayLog) string {
	switch {
	case log.IsHoliday:
		return "Holiday"
	case log.IsWeekend:
		return "Week Off"
	case log.LeaveType != "":
		return "On Leave"
	default:
		return c.rules.DefaultShiftLabel
	}
}

// breakMinutes sums the positive gaps between consecutive sessions. A
// legacy single-pair log falls back to its supplied break field.
func (c *DayCalculator) breakMinutes(log attendance.DayLog) int {
	if len(log.Sessions) == 0 {
		return log.BreakMinutes
	}

	total := 0
	for i := 1; i < len(log.Sessions); i++ {
		prevOut, ok := timefmt.ParseMinutes(log.Sessions[i-1].Out)
		if !ok {
			continue
		}
		in, ok := timefmt.ParseMinutes(log.Sessions[i].In)
		if !ok {
			continue
		}
		if gap := in - prevOut; gap > 0 {
			total += gap
		}
	}
	return total
}

// boundaryStrings picks the day's first-in and last-out strings, with
// the legacy single-pair fields as fallback.
func boundaryStrings(log attendance.DayLog) (string, string) {
	if len(log.Sessions) == 0 {
		return log.CheckIn, log.CheckOut
	}
	return log.Sessions[0].In, log.Sessions[len(log.Sessions)-1].Out
}

// requiresRegularization flags a past day whose last session was never
// closed. The employee missed a check-out and an admin has to fix it.
func requiresRegularization(log attendance.DayLog, now time.Time) bool {
	if log.IsActive || sameDate(log.Date, now) || len(log.Sessions) == 0 {
		return false
	}
	_, closed := timefmt.Parse(log.Sessions[len(log.Sessions)-1].Out)
	return !closed
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
