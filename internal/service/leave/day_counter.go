package leave

import (
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/leave"
)

// CountDays computes the fractional day count a request consumes.
// Half-day sessions shave half a day off either end of the range; the
// result never drops below half a day.
func CountDays(from, to time.Time, fromSession, toSession leave.SessionChoice) float64 {
	from = dateOnly(from)
	to = dateOnly(to)

	if from.Equal(to) {
		if fromSession == leave.SessionFullDay {
			return 1
		}
		return 0.5
	}

	days := float64(int(to.Sub(from).Hours()/24)) + 1
	if fromSession != leave.SessionFullDay {
		days -= 0.5
	}
	if toSession != leave.SessionFullDay {
		days -= 0.5
	}
	if days < 0.5 {
		return 0.5
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
