package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const utf8BOM = "\ufeff"

// CsvParser streams records from a cookie,timestamp CSV log.
// The header row is consumed by NewCsvParser and never reaches Next.
type CsvParser struct {
	r      *csv.Reader
	header []string
}

// NewCsvParser reads the header row from r and returns a parser positioned
// on the first data row. It returns ErrEmptyLog if r holds no rows at all.
func NewCsvParser(r io.Reader) (*CsvParser, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyLog
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	h := make([]string, len(header))
	for i, f := range header {
		h[i] = strings.TrimSpace(f)
	}
	if len(h) > 0 {
		h[0] = strings.TrimPrefix(h[0], utf8BOM)
	}

	return &CsvParser{r: cr, header: h}, nil
}

// Header returns the header row as read from the input.
func (p *CsvParser) Header() []string {
	return p.header
}

// HeaderValid reports whether the header row is exactly cookie,timestamp.
func (p *CsvParser) HeaderValid() bool {
	return slices.Equal(p.header, ExpectedHeader)
}

// Next returns the next record. See RecordReader for the error contract.
func (p *CsvParser) Next() (LogRecord, error) {
	fields, err := p.r.Read()
	if err == io.EOF {
		return LogRecord{}, io.EOF
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return LogRecord{}, &MalformedRecordError{Line: pe.StartLine, Err: pe.Err}
		}
		return LogRecord{}, err
	}

	line, _ := p.r.FieldPos(0)

	if len(fields) != 2 {
		return LogRecord{}, &MalformedRecordError{Line: line, Fields: slices.Clone(fields), Err: ErrFieldCount}
	}

	cookie := strings.TrimSpace(fields[0])
	ts := strings.TrimSpace(fields[1])
	if cookie == "" || ts == "" {
		return LogRecord{}, &MalformedRecordError{Line: line, Fields: slices.Clone(fields), Err: ErrEmptyField}
	}

	t, err := ParseTimestamp(ts)
	if err != nil {
		return LogRecord{}, &MalformedRecordError{Line: line, Fields: slices.Clone(fields), Err: err}
	}

	return LogRecord{Cookie: cookie, Timestamp: t, Line: line}, nil
}
