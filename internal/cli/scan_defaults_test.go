package cli

import (
	"strconv"
	"testing"

	"mediamedic/internal/config"
	"mediamedic/internal/flags"

	"github.com/spf13/cobra"
)

func TestScanFlagDefaults(t *testing.T) {
	lookup := func(name string) string {
		t.Helper()
		f := scanCmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("flag --%s not registered", name)
		}
		return f.DefValue
	}

	if got := lookup(flags.FlagTier); got != "medium" {
		t.Fatalf("--tier default = %q, want medium", got)
	}
	if got := lookup(flags.FlagTimeout); got != "120" {
		t.Fatalf("--timeout default = %q, want 120", got)
	}
	workers, err := strconv.Atoi(lookup(flags.FlagWorkers))
	if err != nil || workers != config.DefaultWorkers() {
		t.Fatalf("--workers default = %q, want %d", lookup(flags.FlagWorkers), config.DefaultWorkers())
	}
	if got := lookup(flags.FlagListDamaged); got != "false" {
		t.Fatalf("--list-damaged default = %q, want false", got)
	}
	if got := lookup(flags.FlagDryRun); got != "false" {
		t.Fatalf("--dry-run default = %q, want false", got)
	}
}

func TestScanRootIsRequired(t *testing.T) {
	f := scanCmd.Flags().Lookup(flags.FlagRoot)
	if f == nil {
		t.Fatal("flag --root not registered")
	}
	if f.Annotations[cobra.BashCompOneRequiredFlag] == nil {
		t.Fatal("--root is not marked required")
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{flags.FlagVerbose, flags.FlagNoColor} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("persistent flag --%s not registered", name)
		}
	}
}
