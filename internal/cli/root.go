package cli

import (
	"fmt"
	"os"

	"mediamedic/internal/flags"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "mediamedic",
	Short: "Verify the integrity of media files by decoding them with external tools",
	Long: `MediaMedic checks every image and video under a directory tree by handing
them to ffprobe, ffmpeg and exiftool at a chosen strictness tier.

MediaMedic is check-only: it reads files, never repairs or modifies them, and
writes nothing to disk.

Examples:
	# Show available commands and global flags
	mediamedic --help

	# Verify a photo library at the default (medium) tier
	mediamedic scan --root ~/Pictures

	# List the built-in checks
	mediamedic checks list

	# See which external tools this machine has
	mediamedic doctor

Output:
	A live progress line on a terminal, followed by a text summary on stdout.
	There is no machine-readable output format.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Print each failing file the moment it is found")
	rootCmd.PersistentFlags().BoolVar(&noColor, flags.FlagNoColor, false, "Disable ANSI color in all output")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
