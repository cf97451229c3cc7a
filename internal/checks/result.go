package checks

// Result is the reduced outcome of one check against one file.
type Result struct {
	Passed bool
	// Diag records exit statuses and error-text lengths so a failure can be
	// triaged without re-running the tool.
	Diag string
}
