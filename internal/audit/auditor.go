package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mediamedic/internal/checks"
	"mediamedic/internal/media"
	"mediamedic/internal/tools"
)

// Auditor turns one file into one verdict. It resolves the three builtin
// checks once at construction and runs them per the tier policy; every fault
// a check or the runner can produce is absorbed here so the engine only ever
// sees verdicts.
type Auditor struct {
	tools   tools.Availability
	runner  tools.Runner
	exts    media.ExtensionSets
	timeout time.Duration

	probe      checks.Check
	firstFrame checks.Check
	fullDecode checks.Check
}

func New(av tools.Availability, r tools.Runner, exts media.ExtensionSets, timeout time.Duration) (*Auditor, error) {
	a := &Auditor{
		tools:   av,
		runner:  r,
		exts:    exts,
		timeout: timeout,
	}
	var err error
	if a.probe, err = checks.Lookup(checks.IDContainerProbe); err != nil {
		return nil, err
	}
	if a.firstFrame, err = checks.Lookup(checks.IDFirstFrameDecode); err != nil {
		return nil, err
	}
	if a.fullDecode, err = checks.Lookup(checks.IDFullDecode); err != nil {
		return nil, err
	}
	return a, nil
}

// Audit evaluates one file at the given tier. It never returns an error and
// never panics: internal faults become a status=error verdict.
func (a *Auditor) Audit(ctx context.Context, path string, tier media.Tier) (v media.Verdict) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			v = media.Verdict{
				Path:      path,
				Passed:    false,
				Status:    media.StatusError,
				Reason:    fmt.Sprintf("internal fault: %v", r),
				Tier:      tier,
				ElapsedMS: time.Since(start).Milliseconds(),
			}
		}
	}()

	if !a.exts.Supported(path) {
		return media.Verdict{
			Path:      path,
			Passed:    true,
			Status:    media.StatusSkipped,
			Reason:    "unsupported extension",
			Tier:      tier,
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}

	target := checks.Target{
		Path:    path,
		Timeout: a.timeout,
		Tools:   a.tools,
		Runner:  a.runner,
	}

	passed, diags := a.evaluate(ctx, tier, target)

	status := media.StatusOK
	if !passed {
		status = media.StatusDamaged
	}
	return media.Verdict{
		Path:      path,
		Passed:    passed,
		Status:    status,
		Reason:    strings.Join(append([]string{tier.Basis()}, diags...), " | "),
		Tier:      tier,
		ElapsedMS: time.Since(start).Milliseconds(),
	}
}

// evaluate runs the tier's checks and combines their results.
//
// Fast passes on the probe alone. Medium ANDs the probe with the first-frame
// decode and always runs both, so the reason carries the decode diagnostic
// even when the probe already failed. Slow runs everything but the verdict is
// the full decode's alone; a file that fails the probe or the first frame can
// still pass slow, and that non-monotonicity is deliberate (the full decode
// is authoritative).
func (a *Auditor) evaluate(ctx context.Context, tier media.Tier, target checks.Target) (bool, []string) {
	probe := a.probe.Run(ctx, target)
	diags := []string{probe.Diag}

	if tier == media.TierFast {
		return probe.Passed, diags
	}

	frame := a.firstFrame.Run(ctx, target)
	diags = append(diags, frame.Diag)

	if tier == media.TierMedium {
		return probe.Passed && frame.Passed, diags
	}

	full := a.fullDecode.Run(ctx, target)
	diags = append(diags, full.Diag)
	return full.Passed, diags
}
