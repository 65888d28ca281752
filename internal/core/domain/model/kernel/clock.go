package kernel

import "time"

// Clock is an injectable time source. Quota evaluation depends on "today",
// so the reference time and its zone must be explicit rather than read from
// the system ad hoc.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed time zone.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock that reports time in the given zone.
// A nil location falls back to the process-local zone.
func NewSystemClock(location *time.Location) SystemClock {
	if location == nil {
		location = time.Local
	}
	return SystemClock{location: location}
}

// Now returns the current time in the clock's zone.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock always reports the same instant. Intended for tests.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// DayWindow returns the inclusive calendar-day window containing t, in t's
// zone: from midnight to one second before the next midnight. Orders placed
// anywhere inside this window count toward that day's quota.
func DayWindow(t time.Time) (start, end time.Time) {
	year, month, day := t.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Second)
	return start, end
}
