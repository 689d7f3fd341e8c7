// Package dump prints values for debugging and stops: a dump-and-die
// helper, a recursive structure printer and a few render modes.
package dump

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Terminator performs the terminal action after a dump.
type Terminator interface {
	Terminate(code int)
}

// TerminatorFunc adapts a function to Terminator.
type TerminatorFunc func(code int)

// Terminate calls f(code).
func (f TerminatorFunc) Terminate(code int) { f(code) }

// ExitTerminator ends the process with os.Exit.
var ExitTerminator Terminator = TerminatorFunc(os.Exit)

// Config configures a Dumper. Zero fields take defaults: stdout, process
// exit and DefaultOptions.
type Config struct {
	Writer     io.Writer
	Terminator Terminator
	Color      bool
	Defaults   Options
}

// Dumper writes a header and the rendered values to its writer. It is
// safe for concurrent use; each dump is written in a single call.
type Dumper struct {
	mu       sync.Mutex
	out      io.Writer
	term     Terminator
	color    bool
	defaults Options
	style    *pterm.Style
}

// New returns a Dumper for cfg.
func New(cfg Config) *Dumper {
	d := &Dumper{
		out:      cfg.Writer,
		term:     cfg.Terminator,
		color:    cfg.Color,
		defaults: DefaultOptions().merge(cfg.Defaults),
		style:    pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
	}
	if d.out == nil {
		d.out = os.Stdout
	}
	if d.term == nil {
		d.term = ExitTerminator
	}
	return d
}

// Defaults returns the options applied before in-band configuration.
func (d *Dumper) Defaults() Options { return d.defaults }

// Dump writes args with the caller's location and returns.
func (d *Dumper) Dump(args ...any) error {
	return d.DumpAt(Here(1), args...)
}

// DumpAt writes the header for loc followed by each value in args, one
// rendering per line. Configuration objects in args select the limit and
// mode and are not printed.
func (d *Dumper) DumpAt(loc Location, args ...any) error {
	values, opts := d.defaults.Extract(args)

	var b strings.Builder
	for _, line := range Header(loc, opts) {
		if d.color {
			line = d.style.Sprint(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, v := range values {
		b.WriteString(trimNewlines(opts.Mode.Render(v, opts.Limit)))
		b.WriteByte('\n')
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := io.WriteString(d.out, b.String())
	return err
}

// Die dumps args with the caller's location and then terminates with
// status 0. Write errors do not prevent termination.
func (d *Dumper) Die(args ...any) {
	d.DieAt(Here(1), args...)
}

// DieAt is Die with an explicit location.
func (d *Dumper) DieAt(loc Location, args ...any) {
	_ = d.DumpAt(loc, args...)
	d.Terminate(0)
}

// Terminate runs the terminal action with code.
func (d *Dumper) Terminate(code int) {
	d.term.Terminate(code)
}

var std = New(Config{})

// DD dumps args to stdout and exits the process.
func DD(args ...any) {
	std.DieAt(Here(1), args...)
}

// Print dumps args to stdout without exiting.
func Print(args ...any) error {
	return std.DumpAt(Here(1), args...)
}
