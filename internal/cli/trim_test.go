package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestTrimFlagsMarkedRequired(t *testing.T) {
	cmd, _, err := RootCmd.Find([]string{"trim"})
	if err != nil {
		t.Fatalf("find trim command: %v", err)
	}

	for _, name := range []string{"start", "end"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("expected a %q flag", name)
		}
		if len(f.Annotations[cobra.BashCompOneRequiredFlag]) == 0 {
			t.Errorf("expected %q to be marked required", name)
		}
	}
}
