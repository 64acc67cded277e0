package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// IO is the output side of a command: results go to stdout, errors to
// stderr, and warnings and debug traces to a logger on stderr.
//
// Warnings never change the exit code. Text-reported conditions such as an
// unknown account are ordinary output, not warnings.
type IO struct {
	out    io.Writer
	errOut io.Writer
	log    *log.Logger
}

// NewIO creates a new IO instance. A nil logger discards warnings.
func NewIO(out, errOut io.Writer, logger *log.Logger) *IO {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &IO{out: out, errOut: errOut, log: logger}
}

// Out returns the stdout writer, for renderers that need to inspect it.
func (o *IO) Out() io.Writer {
	return o.out
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Warnf logs a warning to stderr.
func (o *IO) Warnf(format string, a ...any) {
	o.log.Warnf(format, a...)
}

// Debug logs a debug trace, shown with --verbose.
func (o *IO) Debug(msg string, keyvals ...any) {
	o.log.Debug(msg, keyvals...)
}

// newLogger returns the stderr logger used for warnings and --verbose
// traces. Colors follow the writer, so tests and pipes get plain text.
func newLogger(errOut io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(errOut, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}
