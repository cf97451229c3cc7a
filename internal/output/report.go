package output

import (
	"fmt"
	"io"
	"os"

	"mediamedic/internal/media"
	"mediamedic/internal/tools"

	"github.com/fatih/color"
)

// Reporter renders the human-facing blocks around the live progress line:
// the tool-availability summary and run header before dispatch, the final
// tallies and optional damage listing after.
type Reporter struct {
	writer io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{writer: w}
}

func (r *Reporter) ToolSummary(av tools.Availability) {
	fmt.Fprintln(r.writer, "External tools:")
	r.toolLine("ffprobe", av.FFprobe, av.FFprobeVersion)
	r.toolLine("ffmpeg", av.FFmpeg, av.FFmpegVersion)
	r.toolLine("exiftool", av.Exiftool, av.ExiftoolVersion)
	if !av.Any() {
		color.New(color.FgYellow).Fprintln(r.writer, "Warning: no external tool found; every supported file will be reported damaged.")
	}
}

func (r *Reporter) toolLine(name string, present bool, version string) {
	if present {
		status := color.New(color.FgGreen).Sprint("OK")
		if version != "" {
			fmt.Fprintf(r.writer, "  %-9s %s (%s)\n", name, status, version)
			return
		}
		fmt.Fprintf(r.writer, "  %-9s %s\n", name, status)
		return
	}
	fmt.Fprintf(r.writer, "  %-9s %s\n", name, color.New(color.FgRed).Sprint("MISSING"))
}

// RunHeader prints the active tier with its rationale and the size of the
// discovered file set.
func (r *Reporter) RunHeader(tier media.Tier, total, workers int) {
	fmt.Fprintf(r.writer, "Tier: %s\n", tier.Basis())
	fmt.Fprintf(r.writer, "Files discovered: %d (workers: %d)\n", total, workers)
}

// Summary prints the final tallies. OK includes skipped files; Damaged
// includes error verdicts.
func (r *Reporter) Summary(root string, tier media.Tier, total int, tally media.Tally) {
	bold := color.New(color.Bold)
	bold.Fprintln(r.writer, "==== Verification complete ====")
	fmt.Fprintf(r.writer, "Root: %s\n", root)
	fmt.Fprintf(r.writer, "Tier: %s\n", tier)

	okWord := fmt.Sprintf("%d", tally.OK)
	badWord := fmt.Sprintf("%d", tally.Bad)
	if tally.Bad > 0 {
		badWord = color.New(color.FgRed, color.Bold).Sprint(tally.Bad)
	} else {
		okWord = color.New(color.FgGreen).Sprint(tally.OK)
	}
	fmt.Fprintf(r.writer, "Total: %d | OK/skipped: %s | Damaged/errors: %s\n", total, okWord, badWord)
}

// DamagedList itemizes failures, one line per file, in the order they were
// recorded (arbitrary completion order, not path order).
func (r *Reporter) DamagedList(damaged []media.Verdict) {
	if len(damaged) == 0 {
		return
	}
	fmt.Fprintln(r.writer, "Damaged files:")
	tag := color.New(color.FgRed).Sprint("[DAMAGED]")
	for _, v := range damaged {
		fmt.Fprintf(r.writer, "%s %s | %s\n", tag, v.Path, v.Reason)
	}
}

// DryRunList prints the classification of every discovered file without
// running any external tool.
func (r *Reporter) DryRunList(paths []string, exts media.ExtensionSets) {
	for _, p := range paths {
		kind := exts.Classify(p)
		if kind == media.KindUnsupported {
			fmt.Fprintf(r.writer, "skip  %s\n", p)
			continue
		}
		fmt.Fprintf(r.writer, "check %s (%s)\n", p, kind)
	}
}
