package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"mediamedic/internal/audit"
	"mediamedic/internal/config"
	"mediamedic/internal/media"
	"mediamedic/internal/output"
	"mediamedic/internal/tools"
)

// Exit code contract:
// 0 = run completed; damage, if any, is reported, never gated on
// 2 = invalid root path (scan did not run)
// 3 = internal setup error (scan did not run)
const (
	ExitOK          = 0
	ExitInvalidRoot = 2
	ExitSetup       = 3
)

// Engine orchestrates one verification run: validate the root, walk it,
// probe the external tools, dispatch audits over the worker pool, fold the
// streamed verdicts into the tally, and render the report.
type Engine struct {
	Cfg    *config.Config
	Runner tools.Runner

	// Tools overrides startup detection when non-nil (tests; doctor reuse).
	Tools *tools.Availability

	// LiveProgress enables the in-place progress line; the CLI sets it from
	// TTY detection.
	LiveProgress bool

	Stdout io.Writer
	Stderr io.Writer
}

func New(cfg *config.Config) *Engine {
	return &Engine{
		Cfg:    cfg,
		Runner: tools.NewExecRunner(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (e *Engine) Run(ctx context.Context) int {
	cfg := e.Cfg
	root := cfg.Scan.Root

	if err := ValidateRoot(root); err != nil {
		fmt.Fprintf(e.Stderr, "Error: %v\n", err)
		return ExitInvalidRoot
	}

	files, err := Discover(root)
	if err != nil {
		fmt.Fprintf(e.Stderr, "Error: %v\n", err)
		return ExitInvalidRoot
	}

	reporter := output.NewReporter(e.Stdout)
	exts := cfg.Extensions()

	if cfg.Scan.DryRun {
		reporter.DryRunList(files, exts)
		return ExitOK
	}

	av := e.availability(ctx)
	tier := cfg.Tier()

	reporter.ToolSummary(av)
	reporter.RunHeader(tier, len(files), cfg.Runtime.Workers)

	auditor, err := audit.New(av, e.Runner, exts, cfg.PerFileTimeout())
	if err != nil {
		fmt.Fprintf(e.Stderr, "Error: %v\n", err)
		return ExitSetup
	}
	scheduler, err := NewScheduler(auditor.Audit, cfg.Runtime.Workers)
	if err != nil {
		fmt.Fprintf(e.Stderr, "Error: %v\n", err)
		return ExitSetup
	}

	console := output.NewConsole(e.Stdout, e.LiveProgress)
	total := len(files)

	// Single aggregation loop: the tally is only ever touched here, so the
	// counters stay exact no matter how workers interleave.
	var tally media.Tally
	for v := range scheduler.Execute(ctx, files, tier) {
		bad := tally.Add(v)
		if bad && cfg.Runtime.Verbose {
			console.Logf("[%s] %s | %s", v.Status, v.Path, v.Reason)
		}
		console.Progress(tally.Checked, total, tally.OK, tally.Bad)
	}
	// Always terminate the progress line, interrupted runs included.
	console.Finish()

	reporter.Summary(root, tier, total, tally)
	if cfg.Output.ListDamaged {
		reporter.DamagedList(tally.Damaged)
	}
	return ExitOK
}

func (e *Engine) availability(ctx context.Context) tools.Availability {
	if e.Tools != nil {
		return *e.Tools
	}
	return tools.Detect(ctx, e.Runner)
}
