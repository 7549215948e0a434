package attendance

import (
	"testing"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() Rules {
	return Rules{
		ShiftStartMinute:  570, // 09:30
		EarlyGraceMinutes: 15,
		DefaultShiftLabel: "09:30 AM - 06:30 PM",
	}
}

func day(dateStr string) time.Time {
	d, _ := time.Parse("2006-01-02", dateStr)
	return d
}

func at(dateStr, clock string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", dateStr+" "+clock)
	return t
}

func TestDeriveClosedDay(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	log := attendance.DayLog{
		Date: day("2025-03-10"),
		Sessions: []attendance.PunchPair{
			{In: "09:30 AM", Out: "01:00 PM"},
			{In: "02:00 PM", Out: "06:30 PM"},
		},
	}
	stats := calc.Derive(log, at("2025-03-11", "10:00"))

	assert.Equal(t, 540, stats.GrossMinutes) // 09:30 to 18:30
	assert.Equal(t, 60, stats.BreakMinutes)
	assert.Equal(t, 480, stats.EffectiveMinutes)
	assert.Equal(t, attendance.ArrivalOnTime, stats.Arrival)
	assert.Equal(t, "09:30 AM - 06:30 PM", stats.FormattedRange)
}

func TestDeriveEffectiveNeverExceedsGross(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	logs := []attendance.DayLog{
		{Date: day("2025-03-10"), Sessions: []attendance.PunchPair{{In: "09:00 AM", Out: "05:00 PM"}}},
		{Date: day("2025-03-10"), Sessions: []attendance.PunchPair{
			{In: "09:00 AM", Out: "11:00 AM"},
			{In: "01:00 PM", Out: "05:00 PM"},
		}},
		{Date: day("2025-03-10"), Sessions: []attendance.PunchPair{
			{In: "10:00 AM", Out: "10:05 AM"},
			{In: "04:00 PM", Out: "04:10 PM"},
		}},
	}

	for _, log := range logs {
		stats := calc.Derive(log, at("2025-03-11", "10:00"))
		assert.LessOrEqual(t, stats.EffectiveMinutes, stats.GrossMinutes)
		assert.GreaterOrEqual(t, stats.EffectiveMinutes, 0)
	}
}

func TestDeriveArrivalBoundaries(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	tests := []struct {
		checkIn string
		want    attendance.ArrivalStatus
	}{
		{"09:30 AM", attendance.ArrivalOnTime},
		{"09:31 AM", attendance.ArrivalLate},
		{"09:14 AM", attendance.ArrivalEarly},
		{"09:15 AM", attendance.ArrivalOnTime},
	}

	for _, tt := range tests {
		t.Run(tt.checkIn, func(t *testing.T) {
			log := attendance.DayLog{
				Date:     day("2025-03-10"),
				Sessions: []attendance.PunchPair{{In: tt.checkIn, Out: "06:00 PM"}},
			}
			stats := calc.Derive(log, at("2025-03-11", "10:00"))
			assert.Equal(t, tt.want, stats.Arrival)
		})
	}
}

func TestDeriveEmptyDayCategoryLabels(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())
	now := at("2025-03-11", "10:00")

	tests := []struct {
		name string
		log  attendance.DayLog
		want string
	}{
		{"holiday", attendance.DayLog{Date: day("2025-03-10"), IsHoliday: true}, "Holiday"},
		{"holiday wins over weekend", attendance.DayLog{Date: day("2025-03-09"), IsHoliday: true, IsWeekend: true}, "Holiday"},
		{"weekend", attendance.DayLog{Date: day("2025-03-09"), IsWeekend: true}, "Week Off"},
		{"on leave", attendance.DayLog{Date: day("2025-03-10"), LeaveType: "casual"}, "On Leave"},
		{"plain absent", attendance.DayLog{Date: day("2025-03-10")}, "09:30 AM - 06:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := calc.Derive(tt.log, now)
			assert.Equal(t, tt.want, stats.FormattedRange)
			assert.Equal(t, attendance.ArrivalNone, stats.Arrival)
			assert.Zero(t, stats.GrossMinutes)
			assert.Zero(t, stats.EffectiveMinutes)
		})
	}
}

func TestDeriveOpenDayUsesNowOnlyToday(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	log := attendance.DayLog{
		Date:     day("2025-03-10"),
		Sessions: []attendance.PunchPair{{In: "09:30 AM", Out: "-"}},
		IsActive: true,
	}

	// Same day: measured against the running clock.
	stats := calc.Derive(log, at("2025-03-10", "12:30"))
	assert.Equal(t, 180, stats.GrossMinutes)
	assert.Equal(t, "09:30 AM - --", stats.FormattedRange)

	// Later day: the open session contributes nothing.
	log.IsActive = false
	stats = calc.Derive(log, at("2025-03-12", "12:30"))
	assert.Equal(t, 0, stats.GrossMinutes)
	assert.True(t, stats.RequiresRegularization)
}

func TestDeriveLegacySinglePairFallback(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	log := attendance.DayLog{
		Date:         day("2025-03-10"),
		CheckIn:      "09:45 AM",
		CheckOut:     "06:15 PM",
		BreakMinutes: 45,
	}
	stats := calc.Derive(log, at("2025-03-11", "10:00"))

	assert.Equal(t, 510, stats.GrossMinutes)
	assert.Equal(t, 45, stats.BreakMinutes)
	assert.Equal(t, 465, stats.EffectiveMinutes)
	assert.Equal(t, attendance.ArrivalLate, stats.Arrival)
	assert.Equal(t, "09:45 AM - 06:15 PM", stats.FormattedRange)
}

func TestVisualSegmentsSumToHundred(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	log := attendance.DayLog{
		Date: day("2025-03-10"),
		Sessions: []attendance.PunchPair{
			{In: "09:30 AM", Out: "11:00 AM"},
			{In: "11:45 AM", Out: "02:00 PM"},
			{In: "03:00 PM", Out: "06:30 PM"},
		},
	}
	segments := calc.VisualSegments(log, at("2025-03-11", "10:00"))
	require.Len(t, segments, 5)

	total := 0.0
	for _, seg := range segments {
		total += seg.WidthPct
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	assert.Equal(t, attendance.SegmentWork, segments[0].Type)
	assert.Equal(t, attendance.SegmentBreak, segments[1].Type)
}

func TestVisualSegmentsDegenerateSpan(t *testing.T) {
	t.Parallel()
	calc := NewDayCalculator(testRules())

	// Instant punch: span clamps to one minute, no divide by zero.
	log := attendance.DayLog{
		Date:     day("2025-03-10"),
		Sessions: []attendance.PunchPair{{In: "09:30 AM", Out: "09:30 AM"}},
	}
	segments := calc.VisualSegments(log, at("2025-03-11", "10:00"))
	require.Len(t, segments, 1)
	assert.Equal(t, 0.0, segments[0].WidthPct)
}
