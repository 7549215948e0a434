package attendance

import (
	"math"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/markwaveai/markwave-hr/internal/pkg/timefmt"
)

// Summary aggregates derived day stats over a reporting window.
type Summary struct {
	PresentDays      int
	TotalEffective   int
	AvgMinutesPerDay int
	OnTimePercent    int
}

// Rollup recomputes stats for every log inside the window and averages
// over present days only. Days without a check-in (weekends, holidays,
// leave) never count against the average.
func (c *DayCalculator) Rollup(logs []attendance.DayLog, window attendance.SummaryWindow, now time.Time) Summary {
	start := windowStart(window, now)
	today := dateOnly(now)

	var s Summary
	onTime := 0
	for _, log := range logs {
		d := dateOnly(log.Date)
		if d.Before(start) || d.After(today) {
			continue
		}

		in, _ := boundaryStrings(log)
		if _, ok := timefmt.Parse(in); !ok {
			continue
		}

		stats := c.Derive(log, now)
		s.PresentDays++
		s.TotalEffective += stats.EffectiveMinutes
		if stats.Arrival == attendance.ArrivalOnTime {
			onTime++
		}
	}

	if s.PresentDays == 0 {
		return s
	}
	s.AvgMinutesPerDay = s.TotalEffective / s.PresentDays
	s.OnTimePercent = int(math.Round(float64(onTime) / float64(s.PresentDays) * 100))
	return s
}

// windowStart computes the first day of the window. Weeks start on
// Monday; a Sunday belongs to the week that began six days earlier.
func windowStart(window attendance.SummaryWindow, now time.Time) time.Time {
	today := dateOnly(now)
	switch window {
	case attendance.WindowWeek:
		back := int(today.Weekday()) - 1
		if today.Weekday() == time.Sunday {
			back = 6
		}
		return today.AddDate(0, 0, -back)
	case attendance.WindowMonth:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	default:
		return today
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
