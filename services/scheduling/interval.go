package scheduling

import (
	"fmt"
	"strconv"
)

// TimeOfDay is a wall-clock time with no date component.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if len(s) != 5 || s[2] != ':' {
		return t, NewInvalidIntervalError(fmt.Sprintf("time %q is not in HH:MM format", s))
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return t, NewInvalidIntervalError(fmt.Sprintf("time %q is not in HH:MM format", s))
		}
	}
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	if hour > 23 || minute > 59 {
		return t, NewInvalidIntervalError(fmt.Sprintf("time %q is out of range", s))
	}
	t.Hour, t.Minute = hour, minute
	return t, nil
}

// Minutes returns the time as minutes from midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// Add returns the time advanced by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	total := t.Minutes() + minutes
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Interval is a half-open time range [Start, End) within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval constructs an interval, enforcing Start < End.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, NewInvalidIntervalError(
			fmt.Sprintf("interval start %s must be before end %s", start, end))
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval parses and validates a pair of "HH:MM" bounds.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

// Overlaps reports whether two half-open intervals share any instant. Touching
// intervals (a.End == b.Start) do not overlap. This is the single overlap
// predicate; every conflict check in the system reduces to it.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
