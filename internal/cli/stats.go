package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcxtools/tcxedit/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats <file.tcx>",
		Short: "Show activity statistics",
		Args:  cobra.ExactArgs(1),
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s := openSession(args[0])
	stats := s.Stats()

	if getFormat() == "text" {
		printStatsText(stats)
		return
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}

func printStatsText(stats model.ActivityStats) {
	fmt.Printf("sport:        %s\n", stats.Sport)
	fmt.Printf("start:        %s\n", stats.StartTime)
	fmt.Printf("duration:     %.1f s\n", stats.TotalTimeSeconds)
	fmt.Printf("distance:     %.1f m\n", stats.TotalDistanceMeters)
	fmt.Printf("calories:     %d\n", stats.TotalCalories)
	fmt.Printf("trackpoints:  %d\n", stats.TrackpointCount)
	if stats.AvgHeartRate != nil {
		fmt.Printf("heart rate:   %d-%d bpm (avg %.1f)\n", *stats.MinHeartRate, *stats.MaxHeartRate, *stats.AvgHeartRate)
	}
	if stats.ElevationGain != nil {
		fmt.Printf("elevation:    +%.1f/-%.1f m\n", *stats.ElevationGain, *stats.ElevationLoss)
	}
	if stats.MaxAltitude != nil {
		fmt.Printf("altitude:     %.1f-%.1f m\n", *stats.MinAltitude, *stats.MaxAltitude)
	}
}
