package analysis

import (
	"errors"
	"fmt"
	"io"

	"github.com/Alain-L/cookielog/parser"
)

// Stats describes one scan.
type Stats struct {
	// Processed is the number of well-formed records examined.
	Processed int
	// Matched is the number of records dated on the target day.
	Matched int
	// Skipped is the number of malformed rows.
	Skipped int
	// Stopped is true when the scan ended on a record older than the
	// target day rather than at the end of the input.
	Stopped bool
	// StopLine is the input line of that record.
	StopLine int
}

// Result is the outcome of Counter.Count.
type Result struct {
	// Cookies holds the most active cookies in first-seen order.
	// It is empty when nothing matched the target day.
	Cookies  []string
	MaxCount int
	Stats    Stats
}

// Counter finds the most active cookies on one day of a log sorted by
// timestamp, most recent first.
//
// The scan stops at the first record dated before the target day. On input
// that is not sorted descending this can under-count.
type Counter struct {
	target Date
	basis  DateBasis
	sink   Sink
}

// NewCounter returns a Counter for target. A nil sink discards diagnostics.
func NewCounter(target Date, basis DateBasis, sink Sink) *Counter {
	if sink == nil {
		sink = Discard
	}
	return &Counter{target: target, basis: basis, sink: sink}
}

// Count scans r and returns the cookies with the highest count on the
// target day. Malformed rows are skipped. Only a read failure of the
// underlying input is returned as an error.
func (c *Counter) Count(r parser.RecordReader) (Result, error) {
	table := NewFrequencyTable()
	var st Stats

	c.sink.Debugf("Counting cookies for date: %s (basis %s)", c.target, c.basis)

scan:
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if parser.IsMalformed(err) {
				st.Skipped++
				c.sink.Debugf("Skipping malformed record: %v", err)
				continue
			}
			return Result{Cookies: []string{}, Stats: st}, fmt.Errorf("reading records: %w", err)
		}

		st.Processed++
		switch DateOf(rec.Timestamp, c.basis).Compare(c.target) {
		case 0:
			table.Add(rec.Cookie)
			st.Matched++
		case -1:
			st.Stopped = true
			st.StopLine = rec.Line
			c.sink.Debugf("Reached %s on line %d, before %s, stopping",
				DateOf(rec.Timestamp, c.basis), rec.Line, c.target)
			break scan
		}
	}

	c.sink.Debugf("Processed %d entries, found %d for target date, skipped %d malformed",
		st.Processed, st.Matched, st.Skipped)

	res := Result{
		Cookies:  table.Leaders(),
		MaxCount: table.Max(),
		Stats:    st,
	}
	if len(res.Cookies) == 0 {
		c.sink.Debugf("No cookies found for %s", c.target)
	} else {
		c.sink.Debugf("Most active cookies (count=%d, %d distinct seen): %v",
			res.MaxCount, table.Len(), res.Cookies)
	}
	return res, nil
}

// MostActive is Count with the UTC basis and no diagnostics.
func MostActive(r parser.RecordReader, target Date) ([]string, error) {
	res, err := NewCounter(target, BasisUTC, nil).Count(r)
	if err != nil {
		return nil, err
	}
	return res.Cookies, nil
}
