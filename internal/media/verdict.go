package media

type Status string

const (
	StatusOK      Status = "ok"
	StatusDamaged Status = "damaged"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Verdict is the outcome of auditing a single file. It is created once by the
// auditor and never mutated afterwards; the engine only reads it.
type Verdict struct {
	Path   string
	Passed bool
	Status Status
	// Reason carries the tier rationale plus per-check diagnostics, suitable
	// for the itemized damage listing.
	Reason string
	Tier   Tier
	// ElapsedMS is wall-clock audit time in whole milliseconds.
	ElapsedMS int64
}

// Counts reports whether the verdict lands in the ok column of a tally.
// Skipped files count as ok: an unsupported extension is not damage.
func (v Verdict) OK() bool {
	return v.Status == StatusOK || (v.Passed && v.Status == StatusSkipped)
}

// Tally accumulates verdicts for one run. It must only ever be touched from a
// single goroutine; the engine owns it inside its aggregation loop.
type Tally struct {
	Checked int
	OK      int
	Bad     int
	// Damaged holds failing verdicts in the order they were recorded
	// (arbitrary completion order, not path order).
	Damaged []Verdict
}

// Add folds one verdict into the tally and reports whether it counted as bad.
func (t *Tally) Add(v Verdict) bool {
	t.Checked++
	if v.OK() {
		t.OK++
		return false
	}
	t.Bad++
	t.Damaged = append(t.Damaged, v)
	return true
}
