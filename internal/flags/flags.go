package flags

// Package flags defines canonical CLI flag names shared across the CLI and engine.
// Keeping these as constants helps avoid drift between Cobra flag wiring and other
// code paths that need to reference flags (e.g. error messages that name a flag).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Scan.Root, flags.FlagRoot, "", "...")
//	arg := "--" + flags.FlagRoot
const (
	// Scan
	FlagRoot        = "root"
	FlagTier        = "tier"
	FlagExts        = "exts"
	FlagListDamaged = "list-damaged"
	FlagDryRun      = "dry-run"

	// Runtime
	FlagWorkers = "workers"
	FlagTimeout = "timeout"

	// Persistent
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
)
