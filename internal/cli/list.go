package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tcxtools/tcxedit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library activities",
		Run:   runList,
	}

	cmd.Flags().String("sport", "", "Filter by sport")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	sport, _ := cmd.Flags().GetString("sport")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	activities, err := s.List(cmd.Context(), store.ListParams{
		Sport: sport,
		Limit: limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if getFormat() == "text" {
		for _, a := range activities {
			fmt.Printf("%s  %-10s %-24s %8.1f m  %6.0f s  imported %s\n",
				a.ID, a.Sport, a.Name, a.DistanceMeters, a.TotalTimeSeconds,
				humanize.Time(a.CreatedAt))
		}
		return
	}

	b, _ := json.MarshalIndent(activities, "", "  ")
	fmt.Println(string(b))
}
