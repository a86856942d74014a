package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout is the wire form of every date_time field: a naive
// local timestamp without a zone offset.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime is a calendar date plus time of day in local time. The
// persisted file carries no zone information, so sub-second precision
// and offsets are deliberately dropped.
type DateTime struct {
	time.Time
}

// Now returns the current local time truncated to whole seconds.
func Now() DateTime {
	return DateTime{time.Now().Local().Truncate(time.Second)}
}

// NewDateTime builds a DateTime from calendar components in local time.
func NewDateTime(year int, month time.Month, day, hour, minute, second int) DateTime {
	return DateTime{time.Date(year, month, day, hour, minute, second, 0, time.Local)}
}

// ParseDateTime parses the wire layout.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return DateTime{}, fmt.Errorf("parsing date_time %q: %w", s, err)
	}
	return DateTime{t}, nil
}

func (d DateTime) String() string {
	return d.Format(DateTimeLayout)
}

// MarshalJSON writes the fixed wire layout.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateTimeLayout))
}

// UnmarshalJSON reads the fixed wire layout.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date_time must be a string: %w", err)
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
