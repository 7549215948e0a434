package holiday

import "time"

// Holiday is a read-only holiday calendar entry.
type Holiday struct {
	ID   string
	Date time.Time
	Name string
}

// Calendar is a point-in-time view of the holiday table. Lookups are by
// calendar date; the time component of the argument is ignored.
type Calendar interface {
	NameOn(date time.Time) (string, bool)
	All() []Holiday
}
