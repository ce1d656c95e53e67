package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tcxtools/tcxedit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <file.tcx>",
		Short: "Import an activity into the library",
		Long:  "Parse and summarize a TCX file and store it in the local library. Re-importing the same file replaces the previous entry.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	cmd.Flags().String("name", "", "Activity name (default: file name)")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = filepath.Base(args[0])
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read file", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	activity, err := s.Import(cmd.Context(), store.ImportParams{
		Name: name,
		XML:  string(data),
	})
	if err != nil {
		exitErr("import", err)
	}

	b, _ := json.MarshalIndent(activity, "", "  ")
	fmt.Println(string(b))
}
