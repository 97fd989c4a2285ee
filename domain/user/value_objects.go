package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout exchange format of calendar dates (dd.MM.yyyy)
const DateLayout = "02.01.2006"

// Date Value object - calendar date without a time component.
// The zero Date means "not set".
type Date struct {
	t time.Time
}

// NewDate builds a date normalized to midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses the dd.MM.yyyy form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected dd.MM.yyyy: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time midnight UTC of the date; zero time for an unset date
func (d Date) Time() time.Time { return d.t }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// AddDays shifts the date by n days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// String renders dd.MM.yyyy, or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a dd.MM.yyyy string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange closed interval of calendar dates
type DateRange struct {
	From Date
	To   Date
}

// Contains reports whether d lies within [From, To].
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}
