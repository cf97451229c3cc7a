package cli

import (
	"context"

	"mediamedic/internal/output"
	"mediamedic/internal/tools"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Probe the external tools this machine has",
	Long: `Probe ffprobe, ffmpeg and exiftool and print a line per tool with its
availability and version banner.

A missing tool never fails a scan outright; it only weakens detection:
without ffprobe and exiftool the fast probe cannot confirm anything, and
without ffmpeg no frame decoding happens at all.

Examples:
  mediamedic doctor
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		av := tools.Detect(context.Background(), tools.NewExecRunner())
		output.NewReporter(cmd.OutOrStdout()).ToolSummary(av)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
