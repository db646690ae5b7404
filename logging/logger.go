// Package logging provides the leveled logger used by cookielog.
//
// Lines keep the bracketed tag format used across the CLI:
//
//	2018/12/09 14:19:00 [WARN] Unexpected header: [id ts], expected: [cookie timestamp]
//
// Tags are colorized when the destination is a terminal.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// ANSI colors per level.
var levelColors = [...]string{"\033[2m", "\033[36m", "\033[33m", "\033[31m"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelTags[l]
}

// Logger writes leveled messages to a single destination. It satisfies
// analysis.Sink.
type Logger struct {
	out   *log.Logger
	min   Level
	color bool
}

// New returns a Logger writing to w. Verbose lowers the threshold from WARN
// to DEBUG.
func New(w io.Writer, verbose bool) *Logger {
	threshold := LevelWarn
	if verbose {
		threshold = LevelDebug
	}
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		min:   threshold,
		color: isTerminal(w),
	}
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.min
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	tag := "[" + level.String() + "]"
	if l.color {
		tag = levelColors[level] + tag + "\033[0m"
	}
	l.out.Printf(tag+" "+format, args...)
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
