package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "points <file.tcx>",
		Short: "List trackpoints",
		Long:  "List all trackpoints across activities, laps, and tracks as one flat document-order sequence.",
		Args:  cobra.ExactArgs(1),
		Run:   runPoints,
	}

	cmd.Flags().Bool("count", false, "Only output the trackpoint count")

	RootCmd.AddCommand(cmd)
}

func runPoints(cmd *cobra.Command, args []string) {
	countOnly, _ := cmd.Flags().GetBool("count")

	s := openSession(args[0])

	if countOnly {
		fmt.Println(s.TrackpointCount())
		return
	}

	b, _ := json.MarshalIndent(s.Trackpoints(), "", "  ")
	fmt.Println(string(b))
}
