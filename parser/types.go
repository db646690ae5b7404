// Package parser provides types and readers for cookie activity logs.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyLog is returned when the input has no header row.
	ErrEmptyLog = errors.New("empty log: missing header row")

	// ErrFieldCount flags a row that does not have exactly two fields.
	ErrFieldCount = errors.New("expected 2 fields")

	// ErrEmptyField flags a row whose cookie or timestamp is blank.
	ErrEmptyField = errors.New("empty cookie or timestamp")

	// ErrTimestamp flags a row whose timestamp cannot be parsed.
	ErrTimestamp = errors.New("invalid timestamp")
)

// ExpectedHeader is the header row of a cookie log.
var ExpectedHeader = []string{"cookie", "timestamp"}

// LogRecord is a single parsed row of a cookie log.
//
// Example row:
//
//	AtY0laUfhglK3lC7,2018-12-09T14:19:00+00:00
type LogRecord struct {
	// Cookie is the opaque client identifier. Never empty.
	Cookie string

	// Timestamp keeps the offset found in the input.
	Timestamp time.Time

	// Line is the 1-based input line the record started on.
	Line int
}

// RecordReader hands out log records one at a time, in input order.
//
// Next returns io.EOF once the input is exhausted. A row that cannot be
// turned into a LogRecord is reported as a *MalformedRecordError; the
// reader stays usable and the next call moves on to the following row.
// Any other error means the underlying input failed and scanning must stop.
type RecordReader interface {
	Next() (LogRecord, error)
}

// MalformedRecordError describes a row that was skipped.
type MalformedRecordError struct {
	Line   int
	Fields []string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %v (%s)", e.Line, e.Err, strings.Join(e.Fields, ","))
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err marks a skippable row.
func IsMalformed(err error) bool {
	var mr *MalformedRecordError
	return errors.As(err, &mr)
}
