package domain

import (
	"fmt"
	"strings"
	"time"

	"holiday_planner/pkg/errors"
)

// DateTimeLayout is the wire format for every date field in the API:
// 24-hour clock, minute precision, no timezone suffix.
const DateTimeLayout = "2006-01-02 15:04"

// DateTime wraps time.Time so that JSON round-trips exactly through the
// "yyyy-MM-dd HH:mm" pattern.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Minute)}
}

// ParseDateTime parses a wire-format date string. Failures surface as a
// Validation error naming the expected pattern.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, errors.Validation("date %q is not in the expected format (yyyy-MM-dd HH:mm)", s)
	}
	return DateTime{Time: t}, nil
}

func (d DateTime) String() string {
	return d.Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value formats for the database; pgx stores the underlying time.
func (d DateTime) Value() (interface{}, error) {
	return d.Time, nil
}

// Scan accepts a time.Time coming back from the database.
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}
