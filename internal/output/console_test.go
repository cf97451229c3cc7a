package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleProgressRewritesInPlace(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewConsole(buf, true)

	c.Progress(1, 4, 1, 0)
	c.Progress(2, 4, 1, 1)

	out := buf.String()
	if !strings.Contains(out, "\rProgress: 1/4 ( 25.0%) | OK: 1 | Damaged: 0") {
		t.Fatalf("missing first progress render: %q", out)
	}
	if !strings.Contains(out, "\rProgress: 2/4 ( 50.0%) | OK: 1 | Damaged: 1") {
		t.Fatalf("missing second progress render: %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Fatalf("progress renders must not emit newlines: %q", out)
	}
}

func TestConsoleProgressNoopWhenNotLive(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewConsole(buf, false)

	c.Progress(1, 2, 1, 0)
	c.Finish()

	if buf.Len() != 0 {
		t.Fatalf("non-live console wrote %q", buf.String())
	}
}

func TestConsoleLogfClearsAndRedrawsProgress(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewConsole(buf, true)

	c.Progress(1, 2, 1, 0)
	c.Logf("[DAMAGED] %s", "/tree/bad.jpg")

	out := buf.String()
	idx := strings.Index(out, "[DAMAGED] /tree/bad.jpg\n")
	if idx < 0 {
		t.Fatalf("log line missing: %q", out)
	}
	// The progress line is re-drawn after the log line.
	rest := out[idx:]
	if !strings.Contains(rest, "\rProgress: 1/2") {
		t.Fatalf("progress not re-drawn after log line: %q", out)
	}
}

func TestConsoleFinishTerminatesLine(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewConsole(buf, true)

	c.Progress(2, 2, 2, 0)
	c.Finish()
	c.Finish() // idempotent

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("Finish must end the progress line with a newline: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("Finish must be idempotent, got %q", out)
	}
}

func TestConsoleZeroTotal(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewConsole(buf, true)

	c.Progress(0, 0, 0, 0)
	if !strings.Contains(buf.String(), "0/0 (100.0%)") {
		t.Fatalf("empty tree progress = %q", buf.String())
	}
}
