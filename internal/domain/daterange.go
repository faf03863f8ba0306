package domain

import (
	"fmt"
	"time"
)

// DateLayout is the operator-facing calendar date format
const DateLayout = "2006-01-02"

// TimestampLayout is the format git receives in GIT_AUTHOR_DATE and GIT_COMMITTER_DATE
const TimestampLayout = "2006-01-02T15:04:05"

// DateRange is an inclusive range of calendar days
type DateRange struct {
	End   time.Time
	Start time.Time
}

// ParseDate parses a YYYY-MM-DD string as midnight in the local time zone
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// NewDateRange parses both ends and validates start <= end
func NewDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, fmt.Errorf("start date: %w", err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, fmt.Errorf("end date: %w", err)
	}
	r := DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks that the range is non-empty
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidDate
	}
	if dayIndex(r.Start) > dayIndex(r.End) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			r.Start.Format(DateLayout), r.End.Format(DateLayout))
	}
	return nil
}

// Days returns the number of days between start and end (0 when they are equal)
func (r DateRange) Days() int {
	return int(dayIndex(r.End) - dayIndex(r.Start))
}

// Contains reports whether t falls on a calendar day inside the range
func (r DateRange) Contains(t time.Time) bool {
	d := dayIndex(t.In(r.Start.Location()))
	return d >= dayIndex(r.Start) && d <= dayIndex(r.End)
}

// String renders the range as "start..end"
func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// dayIndex maps the calendar date of t to a day number, ignoring the time zone offset
func dayIndex(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
