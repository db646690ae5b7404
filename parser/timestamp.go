package parser

import (
	"fmt"
	"time"
)

// timestampLayouts lists the accepted ISO-8601 forms, most common first.
// Layouts without an offset are read as UTC.
var timestampLayouts = []string{
	// 2018-12-09T14:19:00+00:00, 2018-12-09T14:19:00.123Z
	time.RFC3339Nano,
	// 2018-12-09 14:19:00+00:00
	"2006-01-02 15:04:05.999999999Z07:00",
	// 2018-12-09T14:19+00:00
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseTimestamp parses an ISO-8601 date-time. The returned time keeps the
// offset written in the input.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrTimestamp, s)
}
