// Package types implements special types for the Centsible backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Period is the month a transaction or net worth sample is booked in.
// It is stored as a "YYYY-MM" label, not as a date.
type Period time.Time

// NewPeriod returns a new Period.
func NewPeriod(year int, month time.Month) Period {
	return Period(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the period formatted as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(p).Year(), time.Time(p).Month())
}

// PeriodOf returns the Period in which a time occurs.
func PeriodOf(t time.Time) Period {
	year, month, _ := t.Date()
	return NewPeriod(year, month)
}

// CurrentPeriod returns the Period of the current wall clock time.
func CurrentPeriod() Period {
	return PeriodOf(time.Now().In(time.UTC))
}

// ParsePeriod parses a "YYYY-MM" string and returns the Period it represents.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, err
	}

	return PeriodOf(t), nil
}

// MarshalJSON implements the json.Marshaler interface.
// Periods are encoded as their "YYYY-MM" label.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Period) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParsePeriod(value)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Scan reads the value from the database.
func (p *Period) Scan(value interface{}) error {
	var s string

	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*p = PeriodOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}

	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
// Periods are labels, so they are persisted as text.
func (Period) GormDataType() string {
	return "text"
}

// IsZero reports if the period is the zero value.
func (p Period) IsZero() bool {
	return time.Time(p).IsZero()
}

// Equal reports whether p and q represent the same period.
func (p Period) Equal(q Period) bool {
	return p.String() == q.String()
}

// Before reports whether the period p is before q.
func (p Period) Before(q Period) bool {
	return time.Time(p).Before(time.Time(q))
}

// After reports whether the period p is after q.
func (p Period) After(q Period) bool {
	return time.Time(p).After(time.Time(q))
}

// AddDate adds a specified amount of years and months.
func (p Period) AddDate(years, months int) Period {
	return Period(time.Time(p).AddDate(years, months, 0))
}

// Contains reports whether the time instant is in the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == time.Time(p).Year() && t.Month() == time.Time(p).Month()
}
