package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Console owns the terminal during a run: a single progress line rewritten in
// place, plus occasional full lines (verbose failure reports) printed above
// it. All writes go through one mutex so concurrent callers can never
// interleave a half-rendered progress line with a log line.
type Console struct {
	writer io.Writer
	live   bool

	mu       sync.Mutex
	progress string // last rendered progress line, re-drawn after a log line
	dirty    bool   // progress line currently occupies the cursor row
}

// NewConsole writes to w (stdout when nil). live enables in-place progress
// rendering; pass false for non-TTY output, where Progress becomes a no-op
// and only full lines are written.
func NewConsole(w io.Writer, live bool) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{writer: w, live: live}
}

// Progress renders the single-line running tally. Safe to call from the
// aggregation loop after every completed file.
func (c *Console) Progress(checked, total, ok, bad int) {
	if !c.live {
		return
	}
	pct := 100.0
	if total > 0 {
		pct = float64(checked) / float64(total) * 100
	}
	line := fmt.Sprintf("Progress: %d/%d (%5.1f%%) | OK: %d | Damaged: %d", checked, total, pct, ok, bad)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.progress = line
	c.redrawLocked()
}

// Logf prints a full line, clearing and re-drawing the progress line around
// it so the terminal never shows a log message glued onto a partial tally.
func (c *Console) Logf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearLocked()
	fmt.Fprintf(c.writer, format+"\n", args...)
	c.redrawLocked()
	_ = flushIfPossible(c.writer)
}

// Finish terminates the progress line with a newline so subsequent output
// (the summary, or the shell prompt after an interrupt) starts on a clean
// row. Idempotent.
func (c *Console) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dirty {
		fmt.Fprintln(c.writer)
		c.dirty = false
	}
	_ = flushIfPossible(c.writer)
}

func (c *Console) redrawLocked() {
	if c.progress == "" {
		return
	}
	fmt.Fprint(c.writer, "\r"+c.progress)
	c.dirty = true
	_ = flushIfPossible(c.writer)
}

func (c *Console) clearLocked() {
	if !c.dirty {
		return
	}
	fmt.Fprint(c.writer, "\r"+strings.Repeat(" ", len(c.progress))+"\r")
	c.dirty = false
}
