package cmd

import (
	"context"
	"fmt"

	"github.com/ivelina/tendril/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent focus sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().RecentSessionEvents(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		for _, ev := range events {
			outcome := "completed"
			if !ev.Completed {
				outcome = "interrupted"
			}
			line := fmt.Sprintf("%s  %3d/%3d min  %s",
				ev.StartedAt.Format("2006-01-02 15:04"),
				ev.Minutes, ev.PlannedMinutes, outcome)
			if ev.Rating != nil {
				line += fmt.Sprintf("  felt %.0f/3", *ev.Rating)
			}
			if ev.GoalReached {
				line += "  goal"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of sessions to show")
}
