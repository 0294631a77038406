// Package console renders user-facing progress and notices on stderr. It is
// the scanner's Reporter and is safe for concurrent use.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"codecat/pkg/classify"
)

const defaultWidth = 80

// Console writes coloured notices and, on a terminal, a transient status line.
type Console struct {
	mu          sync.Mutex
	out         io.Writer
	silent      bool
	verbose     bool
	interactive bool
	width       int
	lineActive  bool

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	bold   *color.Color
}

// New creates a Console on f. The status line is only drawn when f is a
// terminal and neither silent nor verbose output was requested.
func New(f *os.File, silent, verbose bool) *Console {
	c := NewWriter(f, silent, verbose)
	fd := f.Fd()
	if !silent && !verbose && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		c.interactive = true
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			c.width = w
		}
	}
	return c
}

// NewWriter creates a non-interactive Console on w.
func NewWriter(w io.Writer, silent, verbose bool) *Console {
	return &Console{
		out:     w,
		silent:  silent,
		verbose: verbose && !silent,
		width:   defaultWidth,
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		cyan:    color.New(color.FgCyan),
		bold:    color.New(color.Bold),
	}
}

// Interactive reports whether the status line is drawn.
func (c *Console) Interactive() bool {
	return c.interactive
}

// Verbose reports whether per-file notices are enabled.
func (c *Console) Verbose() bool {
	return c.verbose
}

// Scanning implements scanner.Reporter.
func (c *Console) Scanning(dir string) {
	c.status("Scanning: " + dir)
}

// Excluded implements scanner.Reporter.
func (c *Console) Excluded(relPath, reason string) {
	if c.verbose {
		c.println(c.yellow, "Skipping %s: %s", relPath, reason)
	}
}

// Included implements scanner.Reporter.
func (c *Console) Included(relPath string) {
	if c.verbose {
		c.println(c.green, "Including file: %s", relPath)
	}
}

// Progress updates the status line with the number of processed files.
func (c *Console) Progress(done, total int) {
	pct := 100
	if total > 0 {
		pct = done * 100 / total
	}
	c.status(fmt.Sprintf("[%d/%d] Processing files... %3d%%", done, total, pct))
}

// Result prints a verbose notice for one classified file.
func (c *Console) Result(res classify.Result) {
	if !c.verbose {
		return
	}
	switch res.Status {
	case classify.StatusText:
		c.println(c.green, "✔ Read: %s", res.RelPath)
	case classify.StatusBinary:
		c.println(c.yellow, "! Skipped (binary): %s", res.RelPath)
	default:
		c.println(c.red, "✖ Error (%s): %s", res.Status, res.RelPath)
	}
}

// Info prints a plain informational line unless silent.
func (c *Console) Info(format string, args ...any) {
	if !c.silent {
		c.println(nil, format, args...)
	}
}

// Highlight prints a cyan line unless silent.
func (c *Console) Highlight(format string, args ...any) {
	if !c.silent {
		c.println(c.cyan, format, args...)
	}
}

// Success prints a green line unless silent.
func (c *Console) Success(format string, args ...any) {
	if !c.silent {
		c.println(c.green, format, args...)
	}
}

// Warn prints a yellow line unless silent.
func (c *Console) Warn(format string, args ...any) {
	if !c.silent {
		c.println(c.yellow, format, args...)
	}
}

// Error prints a red line; errors are shown even when silent.
func (c *Console) Error(format string, args ...any) {
	c.println(c.red, format, args...)
}

// Writer returns the underlying writer for tables, unless silent.
func (c *Console) Writer() io.Writer {
	if c.silent {
		return io.Discard
	}
	return c.out
}

// Done clears the status line.
func (c *Console) Done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Console) status(msg string) {
	if !c.interactive {
		return
	}
	if limit := c.width - 1; limit > 0 {
		if r := []rune(msg); len(r) > limit {
			msg = string(r[:limit])
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "\r\x1b[2K%s", msg)
	c.lineActive = true
}

func (c *Console) println(col *color.Color, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
	if col == nil {
		fmt.Fprintf(c.out, format+"\n", args...)
		return
	}
	col.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) clearLocked() {
	if c.lineActive {
		fmt.Fprint(c.out, "\r\x1b[2K")
		c.lineActive = false
	}
}
