package builtin

import (
	"context"
	"fmt"

	"mediamedic/internal/checks"
)

type fullDecode struct{}

func init() {
	checks.Register(fullDecode{})
}

func (fullDecode) ID() string {
	return checks.IDFullDecode
}

func (fullDecode) Title() string {
	return "Full-track decode"
}

func (fullDecode) Description() string {
	return `Maps every stream and decodes all frames and audio samples to a null
sink with ffmpeg, no frame limit. The strictest and slowest check; in the
slow tier its result alone decides the verdict. For a still image this is
equivalent to the first-frame decode.`
}

func (fullDecode) Run(ctx context.Context, t checks.Target) checks.Result {
	if !t.Tools.FFmpeg {
		return checks.Result{Passed: false, Diag: "ffmpeg unavailable"}
	}

	out := t.Runner.Run(ctx, "ffmpeg", []string{
		"-v", "error", "-hide_banner", "-nostdin",
		"-i", t.Path, "-map", "0", "-f", "null", "-",
	}, t.Timeout)
	return checks.Result{
		Passed: out.Clean(),
		Diag:   fmt.Sprintf("ffmpeg[full-decode] rc=%d err_len=%d", out.ExitCode, out.ErrLen()),
	}
}
