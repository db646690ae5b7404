package cmd

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Alain-L/cookielog/analysis"
	"github.com/Alain-L/cookielog/logging"
	"github.com/Alain-L/cookielog/output"
	"github.com/Alain-L/cookielog/parser"
)

// openSource opens the log input. Tests replace it to feed the scan from
// a pipe.
var openSource = parser.Open

type scanOutcome struct {
	res analysis.Result
	err error
}

// execute runs one scan and writes the result:
//  1. Open the input (decompressing as needed)
//  2. Consume the header row
//  3. Count records for the target date
//  4. Print the winners once the scan is complete
//
// Nothing is written to stdout unless the scan finishes without error.
func execute(ctx context.Context, opts Options, stdout, stderr io.Writer) error {
	startTime := time.Now()
	logger := logging.New(stderr, opts.Verbose)
	logger.Debugf("Initialized processor for file: %s, date: %s", opts.Path, opts.Date)

	src, err := openSource(opts.Path)
	if err != nil {
		return runtimeError{err}
	}

	// The scan goroutine owns src and closes it on every path. It may outlive
	// an interrupt, so it logs through a sink that is detached first.
	sink := &scanSink{logger: logger}
	done := make(chan scanOutcome, 1)
	go func() {
		defer src.Close()
		res, err := scan(src, opts, sink)
		done <- scanOutcome{res: res, err: err}
	}()

	var out scanOutcome
	select {
	case <-ctx.Done():
		sink.detach()
		return ErrInterrupted
	case out = <-done:
	}
	if out.err != nil {
		return runtimeError{out.err}
	}

	if opts.Stats {
		output.PrintProcessingSummary(stderr, out.res.Stats, time.Since(startTime), inputSize(opts.Path))
	}

	if opts.JSON {
		err = output.ExportJSON(stdout, opts.Date, out.res)
	} else {
		err = output.PrintCookies(stdout, out.res.Cookies)
	}
	if err != nil {
		return runtimeError{err}
	}
	return nil
}

// scan reads the header from src and runs the counter over the rest.
func scan(src io.Reader, opts Options, sink analysis.Sink) (analysis.Result, error) {
	p, err := parser.NewCsvParser(src)
	if err != nil {
		return analysis.Result{}, err
	}
	if !p.HeaderValid() {
		sink.Warnf("Unexpected header: %v, expected: %v", p.Header(), parser.ExpectedHeader)
	}

	counter := analysis.NewCounter(opts.Date, opts.Basis, sink)
	return counter.Count(p)
}

// scanSink forwards scan diagnostics to the logger until detached.
type scanSink struct {
	mu     sync.Mutex
	logger *logging.Logger
}

func (s *scanSink) Debugf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logger != nil {
		s.logger.Debugf(format, args...)
	}
}

func (s *scanSink) Warnf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logger != nil {
		s.logger.Warnf(format, args...)
	}
}

// detach drops every later message. It returns once any message being
// written has been flushed.
func (s *scanSink) detach() {
	s.mu.Lock()
	s.logger = nil
	s.mu.Unlock()
}
