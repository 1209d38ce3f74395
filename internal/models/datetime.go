package models

import (
	"fmt"
	"time"
)

// Wire format for timestamps: ISO-8601 local date-time without a zone,
// matching what the persistence tier stores.
const dateTimeLayout = "2006-01-02T15:04:05"

// parse also accepts fractional seconds on input.
var dateTimeParseLayouts = []string{
	dateTimeLayout,
	"2006-01-02T15:04:05.999999999",
}

// DateTime is a time.Time that marshals to and from the ISO-8601 local
// date-time JSON representation, e.g. "2025-12-01T10:00:00".
type DateTime struct {
	time.Time
}

// NewDateTime wraps t for JSON serialization.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("datetime: not a JSON string: %s", s)
	}
	s = s[1 : len(s)-1]

	var lastErr error
	for _, layout := range dateTimeParseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("datetime: cannot parse %q: %w", s, lastErr)
}
