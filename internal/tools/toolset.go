package tools

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Availability records which external tools answered a version probe at
// startup. It is computed once before any task is dispatched and treated as
// read-only afterwards; a missing tool weakens individual checks instead of
// failing the run.
type Availability struct {
	FFprobe  bool
	FFmpeg   bool
	Exiftool bool

	// Version banners (first stdout line of the version probe), for doctor.
	FFprobeVersion  string
	FFmpegVersion   string
	ExiftoolVersion string
}

// Any reports whether at least one tool is usable.
func (a Availability) Any() bool {
	return a.FFprobe || a.FFmpeg || a.Exiftool
}

const detectTimeout = 15 * time.Second

// test seam
var lookPath = exec.LookPath

// Detect probes the three external tools. A tool counts as available when it
// is on PATH and its version command launches; the exit status is not
// inspected (exiftool rejects -version yet is perfectly usable).
func Detect(ctx context.Context, r Runner) Availability {
	var av Availability
	av.FFprobe, av.FFprobeVersion = probeTool(ctx, r, "ffprobe", "-version")
	av.FFmpeg, av.FFmpegVersion = probeTool(ctx, r, "ffmpeg", "-version")
	av.Exiftool, av.ExiftoolVersion = probeTool(ctx, r, "exiftool", "-ver")
	return av
}

func probeTool(ctx context.Context, r Runner, name, versionFlag string) (bool, string) {
	if _, err := lookPath(name); err != nil {
		return false, ""
	}
	out := r.Run(ctx, name, []string{versionFlag}, detectTimeout)
	if out.Class == ClassLaunchError {
		return false, ""
	}
	return true, firstLine(out.Stdout)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
