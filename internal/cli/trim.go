package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "trim <file.tcx>",
		Short: "Trim the track to an index range",
		Long:  "Restrict every track to the inclusive trackpoint range [start, end], recompute lap summaries, and re-export. Writes to stdout unless -o is given.",
		Args:  cobra.ExactArgs(1),
		Run:   runTrim,
	}

	cmd.Flags().IntP("start", "s", 0, "First trackpoint index to keep (required)")
	cmd.Flags().IntP("end", "e", 0, "Last trackpoint index to keep, inclusive (required)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	for _, name := range []string{"start", "end"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	RootCmd.AddCommand(cmd)
}

func runTrim(cmd *cobra.Command, args []string) {
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	output, _ := cmd.Flags().GetString("output")

	s := openSession(args[0])

	if err := s.Trim(start, end); err != nil {
		exitErr("trim", err)
	}

	xml, err := s.Export()
	if err != nil {
		exitErr("export", err)
	}

	writeOutput(output, xml)
}
