package valueobject

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire format for ledger dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// A zero Date represents an absent or unparseable date; computations that
// group or compare by date skip zero values instead of erroring.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" string. Unparseable input yields the zero
// Date rather than an error.
func ParseDate(raw string) Date {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}
	}
	return Date{t: t}
}

// IsZero returns true for an absent or unparseable date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as a time.Time at midnight UTC
func (d Date) Time() time.Time {
	return d.t
}

// PeriodKey returns the "YYYY-MM" bucket for this date.
// ok is false for the zero Date.
func (d Date) PeriodKey() (string, bool) {
	if d.IsZero() {
		return "", false
	}
	return d.t.Format("2006-01"), true
}

// DaysBetween returns the absolute number of whole days between two dates
func (d Date) DaysBetween(other Date) int {
	diff := d.t.Sub(other.t).Hours() / 24
	if diff < 0 {
		diff = -diff
	}
	return int(diff)
}

// String returns the "YYYY-MM-DD" representation, empty for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Malformed dates decode to the
// zero Date; downstream aggregation skips them.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(raw)
	return nil
}
