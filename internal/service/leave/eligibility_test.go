package leave

import (
	"testing"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/holiday"
	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCalendar map[string]string

func (c fixedCalendar) NameOn(date time.Time) (string, bool) {
	name, ok := c[date.Format("2006-01-02")]
	return name, ok
}

func (c fixedCalendar) All() []holiday.Holiday {
	var out []holiday.Holiday
	for d, name := range c {
		parsed, _ := time.Parse("2006-01-02", d)
		out = append(out, holiday.Holiday{Date: parsed, Name: name})
	}
	return out
}

func testCutoffs() Cutoffs {
	return Cutoffs{
		OpeningMinute:    570, // 09:30
		HalfDayMinute:    750, // 12:30
		SecondHalfMinute: 840, // 14:00
	}
}

func clock(dateStr, hhmm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", dateStr+" "+hhmm)
	return t
}

func candidate(from, to string) Candidate {
	return Candidate{
		FromDate:    date(from),
		ToDate:      date(to),
		FromSession: leave.SessionFullDay,
		ToSession:   leave.SessionFullDay,
		Reason:      "personal work",
		NotifyTo:    []string{"manager@markwave.ai"},
	}
}

func TestAdmitSundayAlwaysDisabled(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())

	// 2025-03-16 is a Sunday.
	c := candidate("2025-03-16", "2025-03-16")
	for _, session := range []leave.SessionChoice{leave.SessionFullDay, leave.SessionFirstHalf, leave.SessionSecondHalf} {
		c.FromSession = session
		err := v.Admit(c, nil, fixedCalendar{}, clock("2025-03-12", "11:00"))

		var restricted *leave.RestrictedDayError
		require.ErrorAs(t, err, &restricted)
		assert.Equal(t, "2025-03-16", restricted.Date)
		assert.Empty(t, restricted.HolidayName)
		assert.Contains(t, restricted.Error(), "is a Sunday")
	}
}

func TestAdmitNamesFirstHolidayInRange(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())
	cal := fixedCalendar{"2025-03-12": "Holi", "2025-03-13": "Company Day"}

	err := v.Admit(candidate("2025-03-11", "2025-03-14"), nil, cal, clock("2025-03-05", "11:00"))

	var restricted *leave.RestrictedDayError
	require.ErrorAs(t, err, &restricted)
	assert.Equal(t, "2025-03-12", restricted.Date)
	assert.Equal(t, "Holi", restricted.HolidayName)
	assert.Contains(t, restricted.Error(), "is a Holiday (Holi)")
}

func TestAdmitTimeGates(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())

	today := "2025-03-11" // Tuesday
	c := candidate(today, today)

	// Before opening, regardless of session.
	err := v.Admit(c, nil, fixedCalendar{}, clock(today, "08:00"))
	assert.ErrorIs(t, err, leave.ErrBeforeOpening)

	// Full Day closes after 12:30.
	err = v.Admit(c, nil, fixedCalendar{}, clock(today, "12:31"))
	assert.ErrorIs(t, err, leave.ErrHalfDayCutoff)
	err = v.Admit(c, nil, fixedCalendar{}, clock(today, "12:30"))
	assert.NoError(t, err)

	// Second Half closes at 14:00 sharp.
	c.FromSession = leave.SessionSecondHalf
	err = v.Admit(c, nil, fixedCalendar{}, clock(today, "14:00"))
	assert.ErrorIs(t, err, leave.ErrSecondHalfCutoff)
	err = v.Admit(c, nil, fixedCalendar{}, clock(today, "13:59"))
	assert.NoError(t, err)

	// Future dates are never time-restricted.
	future := candidate("2025-03-13", "2025-03-13")
	err = v.Admit(future, nil, fixedCalendar{}, clock(today, "08:00"))
	assert.NoError(t, err)
}

func TestAdmitDuplicateOverlap(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())
	now := clock("2025-03-05", "11:00")

	history := []leave.Request{{
		FromDate: date("2025-03-11"),
		ToDate:   date("2025-03-12"),
		Status:   leave.StatusPending,
	}}

	// Overlapping a pending request is a duplicate.
	err := v.Admit(candidate("2025-03-12", "2025-03-13"), history, fixedCalendar{}, now)
	assert.ErrorIs(t, err, leave.ErrDuplicateLeave)

	// A rejected request frees its dates.
	history[0].Status = leave.StatusRejected
	err = v.Admit(candidate("2025-03-12", "2025-03-13"), history, fixedCalendar{}, now)
	assert.NoError(t, err)

	// So does a cancelled one.
	history[0].Status = leave.StatusCancelled
	err = v.Admit(candidate("2025-03-12", "2025-03-13"), history, fixedCalendar{}, now)
	assert.NoError(t, err)

	// Adjacent, non-overlapping dates are fine.
	history[0].Status = leave.StatusApproved
	err = v.Admit(candidate("2025-03-13", "2025-03-14"), history, fixedCalendar{}, now)
	assert.NoError(t, err)
}

func TestAdmitHardRejects(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())
	now := clock("2025-03-05", "11:00")

	c := candidate("2025-03-13", "2025-03-12")
	assert.ErrorIs(t, v.Admit(c, nil, fixedCalendar{}, now), leave.ErrInvalidDateRange)

	c = candidate("2025-03-12", "2025-03-13")
	c.Reason = "   "
	assert.ErrorIs(t, v.Admit(c, nil, fixedCalendar{}, now), leave.ErrReasonRequired)

	c = candidate("2025-03-12", "2025-03-13")
	c.NotifyTo = nil
	assert.ErrorIs(t, v.Admit(c, nil, fixedCalendar{}, now), leave.ErrNotifyRequired)
}

func TestCheckSoftDisabled(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())
	now := clock("2025-03-11", "11:00")

	// Complete, unrestricted candidate is enabled.
	c := candidate("2025-03-12", "2025-03-13")
	assert.False(t, v.CheckSoftDisabled(c, nil, fixedCalendar{}, now))

	// Missing from date.
	empty := c
	empty.FromDate = time.Time{}
	assert.True(t, v.CheckSoftDisabled(empty, nil, fixedCalendar{}, now))

	// Blank reason.
	blank := c
	blank.Reason = ""
	assert.True(t, v.CheckSoftDisabled(blank, nil, fixedCalendar{}, now))

	// Boundary date on a holiday.
	cal := fixedCalendar{"2025-03-13": "Holi"}
	assert.True(t, v.CheckSoftDisabled(c, nil, cal, now))

	// Same-day request before opening.
	todayReq := candidate("2025-03-11", "2025-03-11")
	assert.True(t, v.CheckSoftDisabled(todayReq, nil, fixedCalendar{}, clock("2025-03-11", "08:00")))
}

func TestHasRestrictedDays(t *testing.T) {
	t.Parallel()
	v := NewEligibilityValidator(testCutoffs())

	// 2025-03-10 through 2025-03-14 is Monday to Friday.
	c := candidate("2025-03-10", "2025-03-14")
	assert.False(t, v.HasRestrictedDays(c, fixedCalendar{}))
	assert.True(t, v.HasRestrictedDays(c, fixedCalendar{"2025-03-12": "Holi"}))

	// Range spanning a Sunday.
	span := candidate("2025-03-14", "2025-03-17")
	assert.True(t, v.HasRestrictedDays(span, fixedCalendar{}))
}
