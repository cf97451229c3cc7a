package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"mediamedic/internal/media"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect scan
	// behavior, keep the CLI flags in internal/cli/scan.go in sync.
	Scan    Scan
	Runtime Runtime
	Output  Output
}

type Scan struct {
	// Root is the directory tree to verify (see --root). Required.
	Root string

	// Tier selects the verification depth (see --tier).
	// Allowed values: fast, medium, slow.
	Tier string

	// Exts replaces the built-in image/video suffix lists (see --exts).
	// Values may be provided as repeated flags and/or comma-separated lists,
	// with or without a leading dot, any case. Empty means built-in defaults.
	Exts []string

	// DryRun walks the tree and prints what would be checked without running
	// any external tool (see --dry-run).
	DryRun bool
}

type Runtime struct {
	// Workers controls how many files are audited in parallel (see --workers).
	// 0 means the CPU-derived default, clamped to [2,8]; explicit values must
	// be >= 1 and are taken as given.
	Workers int

	// TimeoutSeconds bounds each external process invocation (see --timeout).
	// Must be >= 1.
	TimeoutSeconds int

	// Verbose prints each failing file the moment it is recorded.
	Verbose bool
}

type Output struct {
	// ListDamaged itemizes failing files after the summary (see --list-damaged).
	ListDamaged bool

	// NoColor disables ANSI color in all output (see --no-color).
	NoColor bool
}

func New() *Config {
	return &Config{
		Scan: Scan{
			Tier: string(media.TierMedium),
		},
		Runtime: Runtime{
			Workers:        DefaultWorkers(),
			TimeoutSeconds: 120,
		},
	}
}

// DefaultWorkers derives the worker count from available CPU parallelism,
// clamped to [2,8]: enough to hide subprocess latency without stacking up
// a full decode per core on large machines.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n < 2 {
		return 2
	}
	if n > 8 {
		return 8
	}
	return n
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Scan.Exts = splitCommaList(c.Scan.Exts)

	c.Scan.Root = strings.TrimSpace(c.Scan.Root)
	if c.Scan.Root == "" {
		return errors.New("--root is required")
	}

	tier, err := media.ParseTier(c.Scan.Tier)
	if err != nil {
		return err
	}
	c.Scan.Tier = string(tier)

	if c.Runtime.Workers == 0 {
		c.Runtime.Workers = DefaultWorkers()
	}
	if c.Runtime.Workers < 1 {
		return errors.New("--workers must be >= 1")
	}
	if c.Runtime.TimeoutSeconds < 1 {
		return errors.New("--timeout must be >= 1 second")
	}

	return nil
}

// Tier returns the validated tier. Call only after Validate.
func (c *Config) Tier() media.Tier {
	return media.Tier(c.Scan.Tier)
}

// Extensions materializes the active suffix sets: the user-supplied list when
// given, the built-in image/video defaults otherwise.
func (c *Config) Extensions() media.ExtensionSets {
	if len(c.Scan.Exts) == 0 {
		return media.DefaultExtensionSets()
	}
	return media.CustomExtensionSets(c.Scan.Exts)
}

// PerFileTimeout is the per-process deadline as a duration.
func (c *Config) PerFileTimeout() time.Duration {
	return time.Duration(c.Runtime.TimeoutSeconds) * time.Second
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// String renders the effective scan settings for the run header.
func (c *Config) String() string {
	return fmt.Sprintf("root=%s tier=%s workers=%d timeout=%ds",
		c.Scan.Root, c.Scan.Tier, c.Runtime.Workers, c.Runtime.TimeoutSeconds)
}
