package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Class is the coarse classification of one external process invocation.
type Class string

const (
	ClassSuccess     Class = "success"
	ClassFailed      Class = "failed"
	ClassTimeout     Class = "timeout"
	ClassLaunchError Class = "launch-error"
)

// Synthetic exit codes for processes that never produced one, following the
// coreutils timeout convention.
const (
	exitTimeout     = 124
	exitLaunchError = 125
)

// Outcome is the result of exactly one Runner.Run call. It is immutable;
// checks only read it.
type Outcome struct {
	Class    Class
	ExitCode int
	Stdout   string
	Stderr   string
}

// Clean reports a zero exit with an empty (trimmed) error stream, which is
// what every check treats as an undamaged signal.
func (o Outcome) Clean() bool {
	return o.Class == ClassSuccess && strings.TrimSpace(o.Stderr) == ""
}

// ErrLen is the trimmed stderr length, recorded in diagnostics for triage
// without re-running the tool.
func (o Outcome) ErrLen() int {
	return len(strings.TrimSpace(o.Stderr))
}

// Runner executes one external command per call. The production
// implementation is ExecRunner; tests substitute fakes through the same
// interface.
type Runner interface {
	Run(ctx context.Context, name string, args []string, timeout time.Duration) Outcome
}

// ExecRunner runs commands via os/exec with a per-invocation deadline. Stdin
// is never attached, so a child can never stall waiting for input.
type ExecRunner struct {
	// Grace bounds how long Wait may linger after the deadline kills the
	// child, covering children that hand their pipes to grandchildren.
	Grace time.Duration
}

func NewExecRunner() ExecRunner {
	return ExecRunner{Grace: 5 * time.Second}
}

func (r ExecRunner) Run(ctx context.Context, name string, args []string, timeout time.Duration) Outcome {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Grace > 0 {
		cmd.WaitDelay = r.Grace
	}

	err := cmd.Run()
	switch {
	case err == nil:
		return Outcome{
			Class:  ClassSuccess,
			Stdout: decodeOutput(stdout.Bytes()),
			Stderr: decodeOutput(stderr.Bytes()),
		}
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return Outcome{
			Class:    ClassTimeout,
			ExitCode: exitTimeout,
			Stderr:   fmt.Sprintf("timeout: %s did not finish within %s", name, timeout),
		}
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Outcome{
				Class:    ClassFailed,
				ExitCode: exitErr.ExitCode(),
				Stdout:   decodeOutput(stdout.Bytes()),
				Stderr:   decodeOutput(stderr.Bytes()),
			}
		}
		return Outcome{
			Class:    ClassLaunchError,
			ExitCode: exitLaunchError,
			Stderr:   fmt.Sprintf("launch error: %v", err),
		}
	}
}
