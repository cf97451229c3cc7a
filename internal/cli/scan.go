package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mediamedic/internal/config"
	"mediamedic/internal/engine"
	"mediamedic/internal/flags"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var cfg = config.New()

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Verify every media file under a directory tree",
	Long: `Verify every image and video under --root by delegating to external tools,
in parallel, with a per-file timeout.

Tiers:
	fast    container/metadata probe only (ffprobe + exiftool)
	medium  fast plus a first-frame decode with ffmpeg (default)
	slow    everything, plus a full decode of every stream; the full decode
	        alone decides the verdict

Missing tools degrade detection instead of failing the run: a check whose
tool is absent cannot confirm a file and reports it damaged. Use
"mediamedic doctor" to see what this machine has.

Exit codes:
	0 = run completed (damaged files are reported, never gate the exit code)
	2 = --root missing, nonexistent, or not a directory

Examples:
  # Default medium tier, CPU-derived worker count
  mediamedic scan --root /mnt/photos

  # Paranoid full-decode pass over an archive, listing every failure
  mediamedic scan --root /mnt/archive --tier slow --timeout 600 --list-damaged

  # Only care about camera raws
  mediamedic scan --root /mnt/photos --exts cr2,cr3,dng

  # See what would be checked without running any tool
  mediamedic scan --root /mnt/photos --dry-run
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitInvalidRoot)
		}

		// SIGINT/SIGTERM cancel in-flight audits; the engine still finishes
		// the progress line and prints the partial summary.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eng := engine.New(cfg)
		eng.LiveProgress = isatty.IsTerminal(os.Stdout.Fd())
		code := eng.Run(ctx)
		stop()
		os.Exit(code)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// MAINTAINER NOTE: If you add/change/remove any scan-affecting flags here,
	// keep internal/config/config.go in sync.

	// Scan
	scanCmd.Flags().StringVar(&cfg.Scan.Root, flags.FlagRoot, "", "Directory tree to verify (required)")
	scanCmd.Flags().StringVar(&cfg.Scan.Tier, flags.FlagTier, cfg.Scan.Tier, "Verification tier: fast|medium|slow (default: medium)")
	scanCmd.Flags().StringSliceVar(&cfg.Scan.Exts, flags.FlagExts, nil, "Suffixes to check instead of the built-in image/video lists (repeatable; comma-separated accepted; leading dot optional)")
	scanCmd.Flags().BoolVar(&cfg.Scan.DryRun, flags.FlagDryRun, false, "Walk the tree and print what would be checked without running any tool")

	// Runtime
	scanCmd.Flags().IntVar(&cfg.Runtime.Workers, flags.FlagWorkers, cfg.Runtime.Workers, "Concurrent workers (default: CPU count clamped to [2,8])")
	scanCmd.Flags().IntVar(&cfg.Runtime.TimeoutSeconds, flags.FlagTimeout, cfg.Runtime.TimeoutSeconds, "Per-process timeout in seconds (default: 120)")

	// Output
	scanCmd.Flags().BoolVar(&cfg.Output.ListDamaged, flags.FlagListDamaged, false, "Itemize every damaged file after the summary")

	_ = scanCmd.MarkFlagRequired(flags.FlagRoot)
}
