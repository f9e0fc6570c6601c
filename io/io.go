// Package dispio centralizes IO and terminal capabilities for go-dispatch:
// writer configuration, color capability detection and ANSI helpers.
package dispio

import (
	stdio "io"
	"os"
)

// IOManager holds the input/output/error streams used by help rendering,
// error reporting and the logger. Streams are injectable for testing.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a character device.
func (m *IOManager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// SupportsColor determines ANSI color capability. NO_COLOR and FORCE_COLOR
// take precedence over detection, then TTY status and TERM.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// ANSI helpers

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }

// Red returns s in red when supported; otherwise s unchanged.
func (m *IOManager) Red(s string) string { return m.Colorize(s, "31") }

// Yellow returns s in yellow when supported; otherwise s unchanged.
func (m *IOManager) Yellow(s string) string { return m.Colorize(s, "33") }
