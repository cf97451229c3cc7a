package checks

import (
	"context"
	"time"

	"mediamedic/internal/tools"
)

// Check is one integrity probe over a single file. Implementations live in
// the builtin subpackage and register themselves at init time.
type Check interface {
	ID() string
	Title() string
	Description() string

	// Run evaluates the target. It must classify every external-process
	// outcome itself and never panic on tool failure; the only error surface
	// is the Passed flag plus the diagnostic.
	Run(ctx context.Context, t Target) Result
}

// Target carries everything a check may consult for one file. Checks MUST
// NOT touch the filesystem beyond handing Path to the runner.
type Target struct {
	Path    string
	Timeout time.Duration
	Tools   tools.Availability
	Runner  tools.Runner
}
