package builtin

import (
	"context"
	"strings"
	"testing"
	"time"

	"mediamedic/internal/checks"
	"mediamedic/internal/tools"
)

// recordingRunner replays canned outcomes per tool and records each argv.
type recordingRunner struct {
	outcomes map[string]tools.Outcome
	argv     map[string][]string
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{
		outcomes: make(map[string]tools.Outcome),
		argv:     make(map[string][]string),
	}
}

func (r *recordingRunner) Run(ctx context.Context, name string, args []string, timeout time.Duration) tools.Outcome {
	r.argv[name] = args
	return r.outcomes[name]
}

func target(r tools.Runner, av tools.Availability) checks.Target {
	return checks.Target{
		Path:    "/tree/clip.mp4",
		Timeout: 10 * time.Second,
		Tools:   av,
		Runner:  r,
	}
}

func mustLookup(t *testing.T, id string) checks.Check {
	t.Helper()
	c, err := checks.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", id, err)
	}
	return c
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestContainerProbe_PassesWhenAnyToolIsClean(t *testing.T) {
	tests := []struct {
		name     string
		ffprobe  tools.Outcome
		exiftool tools.Outcome
		wantPass bool
	}{
		{
			name:     "both clean",
			ffprobe:  tools.Outcome{Class: tools.ClassSuccess},
			exiftool: tools.Outcome{Class: tools.ClassSuccess},
			wantPass: true,
		},
		{
			name:     "only ffprobe clean",
			ffprobe:  tools.Outcome{Class: tools.ClassSuccess},
			exiftool: tools.Outcome{Class: tools.ClassFailed, ExitCode: 1, Stderr: "boom"},
			wantPass: true,
		},
		{
			name:     "only exiftool clean",
			ffprobe:  tools.Outcome{Class: tools.ClassTimeout, ExitCode: 124, Stderr: "timeout"},
			exiftool: tools.Outcome{Class: tools.ClassSuccess},
			wantPass: true,
		},
		{
			name:     "both dirty",
			ffprobe:  tools.Outcome{Class: tools.ClassFailed, ExitCode: 1, Stderr: "moov atom not found"},
			exiftool: tools.Outcome{Class: tools.ClassFailed, ExitCode: 1, Stderr: "bad"},
			wantPass: false,
		},
		{
			name:     "ffprobe clean exit but stderr output",
			ffprobe:  tools.Outcome{Class: tools.ClassSuccess, Stderr: "deprecated option"},
			exiftool: tools.Outcome{Class: tools.ClassFailed, ExitCode: 1},
			wantPass: false,
		},
		{
			name:     "exiftool Error token in stdout",
			ffprobe:  tools.Outcome{Class: tools.ClassFailed, ExitCode: 1, Stderr: "x"},
			exiftool: tools.Outcome{Class: tools.ClassSuccess, Stdout: "Error: File format error"},
			wantPass: false,
		},
	}

	c := mustLookup(t, checks.IDContainerProbe)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecordingRunner()
			r.outcomes["ffprobe"] = tt.ffprobe
			r.outcomes["exiftool"] = tt.exiftool

			res := c.Run(context.Background(), target(r, tools.Availability{FFprobe: true, Exiftool: true}))
			if res.Passed != tt.wantPass {
				t.Fatalf("passed = %v, want %v (diag: %s)", res.Passed, tt.wantPass, res.Diag)
			}
		})
	}
}

func TestContainerProbe_Argv(t *testing.T) {
	r := newRecordingRunner()
	r.outcomes["ffprobe"] = tools.Outcome{Class: tools.ClassSuccess}
	r.outcomes["exiftool"] = tools.Outcome{Class: tools.ClassSuccess}

	c := mustLookup(t, checks.IDContainerProbe)
	c.Run(context.Background(), target(r, tools.Availability{FFprobe: true, Exiftool: true}))

	probe := r.argv["ffprobe"]
	for _, want := range []string{"-v", "error", "-of", "json", "/tree/clip.mp4"} {
		if !hasArg(probe, want) {
			t.Fatalf("ffprobe argv missing %q: %v", want, probe)
		}
	}
	exif := r.argv["exiftool"]
	for _, want := range []string{"-fast", "-fast2", "/tree/clip.mp4"} {
		if !hasArg(exif, want) {
			t.Fatalf("exiftool argv missing %q: %v", want, exif)
		}
	}
}

func TestContainerProbe_NoToolAvailableFails(t *testing.T) {
	c := mustLookup(t, checks.IDContainerProbe)
	res := c.Run(context.Background(), target(newRecordingRunner(), tools.Availability{FFmpeg: true}))

	if res.Passed {
		t.Fatal("probe must fail with no probing tool available")
	}
	for _, want := range []string{"ffprobe unavailable", "exiftool unavailable"} {
		if !strings.Contains(res.Diag, want) {
			t.Fatalf("diag missing %q: %s", want, res.Diag)
		}
	}
}

func TestContainerProbe_SingleToolDegradation(t *testing.T) {
	// Only ffprobe installed: it alone decides, and the missing tool is
	// still noted in the diagnostic.
	r := newRecordingRunner()
	r.outcomes["ffprobe"] = tools.Outcome{Class: tools.ClassSuccess}

	c := mustLookup(t, checks.IDContainerProbe)
	res := c.Run(context.Background(), target(r, tools.Availability{FFprobe: true}))

	if !res.Passed {
		t.Fatalf("expected pass, diag: %s", res.Diag)
	}
	if _, called := r.argv["exiftool"]; called {
		t.Fatal("exiftool must not run when unavailable")
	}
	if !strings.Contains(res.Diag, "exiftool unavailable") {
		t.Fatalf("diag missing degradation note: %s", res.Diag)
	}
}

func TestFirstFrameDecode(t *testing.T) {
	c := mustLookup(t, checks.IDFirstFrameDecode)

	t.Run("unavailable ffmpeg fails", func(t *testing.T) {
		res := c.Run(context.Background(), target(newRecordingRunner(), tools.Availability{FFprobe: true}))
		if res.Passed {
			t.Fatal("expected fail without ffmpeg")
		}
		if !strings.Contains(res.Diag, "ffmpeg unavailable") {
			t.Fatalf("diag = %s", res.Diag)
		}
	})

	t.Run("clean decode passes and argv limits to one frame", func(t *testing.T) {
		r := newRecordingRunner()
		r.outcomes["ffmpeg"] = tools.Outcome{Class: tools.ClassSuccess}

		res := c.Run(context.Background(), target(r, tools.Availability{FFmpeg: true}))
		if !res.Passed {
			t.Fatalf("expected pass, diag: %s", res.Diag)
		}
		argv := r.argv["ffmpeg"]
		for _, want := range []string{"-nostdin", "-frames:v", "1", "-an", "null"} {
			if !hasArg(argv, want) {
				t.Fatalf("ffmpeg argv missing %q: %v", want, argv)
			}
		}
	})

	t.Run("decoder errors fail", func(t *testing.T) {
		r := newRecordingRunner()
		r.outcomes["ffmpeg"] = tools.Outcome{Class: tools.ClassFailed, ExitCode: 1, Stderr: "Invalid data"}

		res := c.Run(context.Background(), target(r, tools.Availability{FFmpeg: true}))
		if res.Passed {
			t.Fatal("expected fail on decoder error")
		}
		for _, want := range []string{"rc=1", "err_len="} {
			if !strings.Contains(res.Diag, want) {
				t.Fatalf("diag missing %q: %s", want, res.Diag)
			}
		}
	})
}

func TestFullDecode(t *testing.T) {
	c := mustLookup(t, checks.IDFullDecode)

	t.Run("unavailable ffmpeg fails", func(t *testing.T) {
		res := c.Run(context.Background(), target(newRecordingRunner(), tools.Availability{Exiftool: true}))
		if res.Passed {
			t.Fatal("expected fail without ffmpeg")
		}
	})

	t.Run("argv maps every stream with no frame limit", func(t *testing.T) {
		r := newRecordingRunner()
		r.outcomes["ffmpeg"] = tools.Outcome{Class: tools.ClassSuccess}

		res := c.Run(context.Background(), target(r, tools.Availability{FFmpeg: true}))
		if !res.Passed {
			t.Fatalf("expected pass, diag: %s", res.Diag)
		}
		argv := r.argv["ffmpeg"]
		for _, want := range []string{"-map", "0", "null"} {
			if !hasArg(argv, want) {
				t.Fatalf("ffmpeg argv missing %q: %v", want, argv)
			}
		}
		if hasArg(argv, "-frames:v") {
			t.Fatalf("full decode must not limit frames: %v", argv)
		}
	})

	t.Run("timeout is a failed check", func(t *testing.T) {
		r := newRecordingRunner()
		r.outcomes["ffmpeg"] = tools.Outcome{Class: tools.ClassTimeout, ExitCode: 124, Stderr: "timeout"}

		res := c.Run(context.Background(), target(r, tools.Availability{FFmpeg: true}))
		if res.Passed {
			t.Fatal("a timed-out decode must not pass")
		}
		if !strings.Contains(res.Diag, "rc=124") {
			t.Fatalf("diag missing timeout exit code: %s", res.Diag)
		}
	})
}
