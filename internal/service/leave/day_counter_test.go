package leave

import (
	"testing"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestCountDays(t *testing.T) {
	t.Parallel()

	// 2025-03-10 is a Monday.
	tests := []struct {
		name        string
		from, to    string
		fromSession leave.SessionChoice
		toSession   leave.SessionChoice
		want        float64
	}{
		{"single full day", "2025-03-10", "2025-03-10", leave.SessionFullDay, leave.SessionFullDay, 1},
		{"single first half", "2025-03-10", "2025-03-10", leave.SessionFirstHalf, leave.SessionFirstHalf, 0.5},
		{"single second half", "2025-03-10", "2025-03-10", leave.SessionSecondHalf, leave.SessionSecondHalf, 0.5},
		{"mon to wed full", "2025-03-10", "2025-03-12", leave.SessionFullDay, leave.SessionFullDay, 3},
		{"mon to wed first half start", "2025-03-10", "2025-03-12", leave.SessionFirstHalf, leave.SessionFullDay, 2.5},
		{"mon to wed both halves", "2025-03-10", "2025-03-12", leave.SessionSecondHalf, leave.SessionFirstHalf, 2},
		{"two days both halves", "2025-03-10", "2025-03-11", leave.SessionSecondHalf, leave.SessionFirstHalf, 1},
		{"floor at half day", "2025-03-10", "2025-03-10", leave.SessionSecondHalf, leave.SessionFirstHalf, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CountDays(date(tt.from), date(tt.to), tt.fromSession, tt.toSession)
			assert.Equal(t, tt.want, got)
		})
	}
}
