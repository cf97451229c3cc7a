package builtin

import (
	"context"
	"fmt"
	"strings"

	"mediamedic/internal/checks"
)

type containerProbe struct{}

func init() {
	checks.Register(containerProbe{})
}

func (containerProbe) ID() string {
	return checks.IDContainerProbe
}

func (containerProbe) Title() string {
	return "Container and metadata probe"
}

func (containerProbe) Description() string {
	return `Introspects the container with ffprobe (errors-only, format and stream
entries as JSON) and reads metadata with exiftool in fast non-recursive mode.
The file passes when at least one available tool reports it clean; with
neither tool available the check fails. Runs in every tier.`
}

func (containerProbe) Run(ctx context.Context, t checks.Target) checks.Result {
	var diagnostics []string
	passed := false

	if t.Tools.FFprobe {
		out := t.Runner.Run(ctx, "ffprobe", []string{
			"-v", "error",
			"-show_entries", "format=format_name:stream=codec_name,codec_type",
			"-of", "json", t.Path,
		}, t.Timeout)
		if out.Clean() {
			passed = true
		}
		diagnostics = append(diagnostics, fmt.Sprintf("ffprobe rc=%d err_len=%d", out.ExitCode, out.ErrLen()))
	} else {
		diagnostics = append(diagnostics, "ffprobe unavailable")
	}

	if t.Tools.Exiftool {
		out := t.Runner.Run(ctx, "exiftool", []string{
			"-fast", "-fast2", "-n", "-S", "-s", "-s", "-s", t.Path,
		}, t.Timeout)
		hasErrorToken := strings.Contains(out.Stdout, "Error")
		if out.Clean() && !hasErrorToken {
			passed = true
		}
		diagnostics = append(diagnostics, fmt.Sprintf("exiftool rc=%d err_len=%d has_error_token=%v", out.ExitCode, out.ErrLen(), hasErrorToken))
	} else {
		diagnostics = append(diagnostics, "exiftool unavailable")
	}

	return checks.Result{Passed: passed, Diag: strings.Join(diagnostics, "; ")}
}
