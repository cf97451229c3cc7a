package engine

import (
	"context"
	"fmt"

	"mediamedic/internal/media"

	"golang.org/x/sync/errgroup"
)

// AuditFunc audits one file at one tier. The production implementation is
// (*audit.Auditor).Audit; tests substitute fakes.
type AuditFunc func(ctx context.Context, path string, tier media.Tier) media.Verdict

type Scheduler struct {
	audit   AuditFunc
	workers int
}

func NewScheduler(audit AuditFunc, workers int) (*Scheduler, error) {
	if audit == nil {
		return nil, fmt.Errorf("audit func is nil")
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", workers)
	}
	return &Scheduler{audit: audit, workers: workers}, nil
}

// Execute streams one verdict per file over the returned channel.
//
// Channel semantics:
//   - In the normal (non-canceled) case, exactly one Verdict is sent per path,
//     in arbitrary completion order.
//   - On context cancellation, dispatch stops promptly, in-flight audits are
//     drained, and fewer than len(paths) verdicts may be emitted.
//   - The channel is closed reliably in both cases.
//
// The pool size is the only concurrency limit; within one audit the external
// processes run sequentially.
func (s *Scheduler) Execute(ctx context.Context, paths []string, tier media.Tier) <-chan media.Verdict {
	out := make(chan media.Verdict)

	go func() {
		defer close(out)

		g, runCtx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)

		for _, path := range paths {
			path := path
			if runCtx.Err() != nil {
				break
			}
			g.Go(func() error {
				v := s.audit(runCtx, path, tier)
				select {
				case out <- v:
				case <-runCtx.Done():
				}
				return nil
			})
		}

		_ = g.Wait()
	}()

	return out
}
