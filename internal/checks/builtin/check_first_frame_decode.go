package builtin

import (
	"context"
	"fmt"

	"mediamedic/internal/checks"
)

type firstFrameDecode struct{}

func init() {
	checks.Register(firstFrameDecode{})
}

func (firstFrameDecode) ID() string {
	return checks.IDFirstFrameDecode
}

func (firstFrameDecode) Title() string {
	return "First-frame decode"
}

func (firstFrameDecode) Description() string {
	return `Decodes exactly one video frame (the sole frame for a still image) with
ffmpeg, audio disabled, output discarded to a null sink. Passes on a zero
exit with an empty error stream. Runs in the medium and slow tiers.`
}

func (firstFrameDecode) Run(ctx context.Context, t checks.Target) checks.Result {
	if !t.Tools.FFmpeg {
		return checks.Result{Passed: false, Diag: "ffmpeg unavailable"}
	}

	out := t.Runner.Run(ctx, "ffmpeg", []string{
		"-v", "error", "-hide_banner", "-nostdin",
		"-i", t.Path, "-frames:v", "1", "-an", "-f", "null", "-",
	}, t.Timeout)
	return checks.Result{
		Passed: out.Clean(),
		Diag:   fmt.Sprintf("ffmpeg[first-frame] rc=%d err_len=%d", out.ExitCode, out.ErrLen()),
	}
}
