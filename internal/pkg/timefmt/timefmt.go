package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day in 24-hour form.
type ClockTime struct {
	Hour24 int
	Minute int
}

// Parse decodes a "hh:mm AM/PM" string. It returns ok=false for "-",
// empty strings, and anything without the single space before the
// AM/PM suffix. Callers treat a failed parse as "no punch yet".
func Parse(s string) (ClockTime, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return ClockTime{}, false
	}

	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return ClockTime{}, false
	}

	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return ClockTime{}, false
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return ClockTime{}, false
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return ClockTime{}, false
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return ClockTime{}, false
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return ClockTime{}, false
	}

	// 12 AM is midnight, 12 PM is noon.
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return ClockTime{Hour24: hour, Minute: minute}, true
}

// MinuteOfDay converts a clock time to minutes since midnight.
func MinuteOfDay(t ClockTime) int {
	return t.Hour24*60 + t.Minute
}

// ParseMinutes parses a "hh:mm AM/PM" string straight to minutes since
// midnight. ok=false follows the same rules as Parse.
func ParseMinutes(s string) (int, bool) {
	t, ok := Parse(s)
	if !ok {
		return 0, false
	}
	return MinuteOfDay(t), true
}

// FormatDuration renders a minute count as "Xh YYm". Negative input
// clamps to "0h 00m".
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}
