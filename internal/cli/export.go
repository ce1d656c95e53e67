package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a stored activity",
		Long:  "Write a stored activity's raw TCX back out, exactly as imported.",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	activity, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("export", err)
	}

	writeOutput(output, activity.XML)
}
