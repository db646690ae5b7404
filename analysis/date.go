// Package analysis counts cookie activity for a single calendar day.
package analysis

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the external form of a target date.
const DateLayout = "2006-01-02"

// Date is a timezone-naive calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string. Out-of-range days such as
// 2018-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format: %s. Expected YYYY-MM-DD", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf returns the calendar date of t under the given basis.
func DateOf(t time.Time, basis DateBasis) Date {
	if basis == BasisUTC {
		t = t.UTC()
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Compare returns -1 if d is before o, +1 if after, and 0 if equal.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DateBasis selects how a record's calendar date is derived from its
// timestamp.
type DateBasis int

const (
	// BasisUTC converts the timestamp to UTC before taking its date.
	BasisUTC DateBasis = iota
	// BasisOffset takes the date in the offset written in the log.
	BasisOffset
)

// ParseDateBasis accepts "utc" or "offset", case-insensitively.
func ParseDateBasis(s string) (DateBasis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utc", "":
		return BasisUTC, nil
	case "offset":
		return BasisOffset, nil
	}
	return BasisUTC, fmt.Errorf("invalid date basis %q: expected utc or offset", s)
}

func (b DateBasis) String() string {
	if b == BasisOffset {
		return "offset"
	}
	return "utc"
}

// Set implements pflag.Value.
func (b *DateBasis) Set(s string) error {
	v, err := ParseDateBasis(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Type implements pflag.Value.
func (b *DateBasis) Type() string {
	return "basis"
}
