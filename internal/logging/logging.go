// Package logging provides the daemon's leveled, colorized console logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

const (
	reset   = "\x1b[0m"
	red     = "\x1b[31m"
	yellow  = "\x1b[33m"
	blue    = "\x1b[34m"
	magenta = "\x1b[35m"
)

// Logger is the daemon-wide log sink. It wraps hclog for level gating and
// structured fields, but renders its own line format matching the original
// daemon's LOG/INFO/WARN/ERR console output.
type Logger struct {
	hc    hclog.Logger
	out   io.Writer
	color bool
}

// New creates a Logger writing to w. verbose raises the level to Debug;
// otherwise INFO and above are shown. Color is enabled only when w is a
// terminal.
func New(w io.Writer, verbose bool) *Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	hc := hclog.New(&hclog.LoggerOptions{
		Name:   "rpaperd",
		Output: w,
		Level:  level,
	})

	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd()))
	}

	return &Logger{hc: hc, out: w, color: useColor}
}

func (l *Logger) ts() string {
	return time.Now().Format("15:04:05")
}

func (l *Logger) line(tag, tagColor string, msg string, args ...any) {
	formatted := msg
	if len(args) > 0 {
		formatted = fmt.Sprintf(msg, args...)
	}
	if l.color {
		fmt.Fprintf(l.out, "%s%s%s %s[%s]%s %s\n", tagColor, tag, reset, yellow, l.ts(), reset, formatted)
	} else {
		fmt.Fprintf(l.out, "%s [%s] %s\n", tag, l.ts(), formatted)
	}
}

// Log writes an unconditional operational message (LOG level).
func (l *Logger) Log(msg string, args ...any) {
	l.line("LOG", blue, msg, args...)
}

// Info writes an informational message, suppressed unless the logger is
// verbose or hclog's level permits Info.
func (l *Logger) Info(msg string, args ...any) {
	if !l.hc.IsInfo() {
		return
	}
	l.line("INFO", magenta, msg, args...)
}

// Warn writes a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.line("WARN", yellow, msg, args...)
}

// Error writes an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.line("ERR", red, msg, args...)
}

// Debug writes a debug message, shown only when verbose.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.hc.IsDebug() {
		return
	}
	l.line("LOG", blue, msg, args...)
}

// Named returns an hclog.Logger scoped under name, sharing this Logger's
// level and output, for components (e.g. go-plugin style subprocess
// wrappers) that want a raw hclog.Logger rather than this type.
func (l *Logger) Named(name string) hclog.Logger {
	return l.hc.Named(name)
}
