package calendar

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the wire format for every date handled by this package.
const DateLayout = "2006-01-02"

// Date is a civil calendar day with no time-of-day and no location.
//
// It has the same fields as civil.Date and adds database and strict JSON
// handling on top of it. The zero value is not a valid day and reports
// IsZero() == true.
type Date civil.Date

// NewDate builds a Date, normalizing out-of-range months and days the same
// way time.Date does (e.g. April 31 becomes May 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
// No UTC conversion happens: 23:30 local time stays on the local day.
func DateOf(t time.Time) Date {
	return Date(civil.DateOf(t))
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	c, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date(c), nil
}

// MustParseDate is like ParseDate but panics on error. Intended for tests
// and package-level tables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) asCivil() civil.Date { return civil.Date(d) }

// String formats the date as zero-padded YYYY-MM-DD.
func (d Date) String() string { return d.asCivil().String() }

// Time returns midnight of the date in loc (UTC when loc is nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return d.asCivil().In(loc)
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Weekday() time.Weekday { return d.Time(time.UTC).Weekday() }

// AddDays returns the date n calendar days after d (before, when n < 0).
func (d Date) AddDays(n int) Date { return Date(d.asCivil().AddDays(n)) }

func (d Date) Before(o Date) bool { return d.asCivil().Before(o.asCivil()) }

func (d Date) After(o Date) bool { return d.asCivil().After(o.asCivil()) }

func (d Date) Equal(o Date) bool { return d == o }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.asCivil().MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// Scan implements sql.Scanner for DATE columns.
// lib/pq hands DATE values over as time.Time at UTC midnight; text values
// are accepted as well.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into calendar.Date", src)
	}
}

// Value implements driver.Valuer. The date is sent as text so the server
// never applies a session timezone to it.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
