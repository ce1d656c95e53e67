package cli

import (
	"github.com/spf13/cobra"

	"github.com/tcxtools/tcxedit/internal/gpxout"
)

func init() {
	cmd := &cobra.Command{
		Use:   "gpx <file.tcx>",
		Short: "Convert to GPX 1.1",
		Args:  cobra.ExactArgs(1),
		Run:   runGpx,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runGpx(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")

	s := openSession(args[0])

	xml, err := gpxout.ToXML(s.Document())
	if err != nil {
		exitErr("convert gpx", err)
	}

	writeOutput(output, xml)
}
