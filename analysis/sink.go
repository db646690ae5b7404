package analysis

// Sink receives diagnostics from a scan. Implementations decide which
// levels are shown; logging.Logger is the one used by the CLI.
type Sink interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Debugf(string, ...any) {}
func (discard) Warnf(string, ...any)  {}
