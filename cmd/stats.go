package cmd

import (
	"fmt"
	"time"

	"github.com/ivelina/tendril/internal/config"
	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print flow statistics without opening the UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		metrics, err := engine.Metrics(now)
		if err != nil {
			return err
		}
		index, err := engine.IndexNow(now)
		if err != nil {
			return err
		}
		today, _ := engine.TodayMinutes(now)
		week, _ := engine.WeekMinutes(now)

		fmt.Printf("Flow Index      %.0f (%s)\n", index.Score, index.Level)
		fmt.Printf("Sessions        %d\n", metrics.SessionCount)
		fmt.Printf("Total focus     %d min\n", metrics.TotalFocusMinutes)
		fmt.Printf("Streak          %d days\n", metrics.CurrentStreakDays)
		fmt.Printf("Today           %d min\n", today)
		fmt.Printf("This week       %d min\n", week)
		fmt.Printf("Completion      %.0f%%\n", metrics.CompletionRate*100)
		fmt.Printf("Average feel    %.1f / 3\n", metrics.AverageRating)
		return nil
	},
}

// openEngine builds a flow engine over the store for one-shot CLI commands.
func openEngine(cmd *cobra.Command) (*flow.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	engine := flow.NewEngine(st.FlowStateRepo(), st.BehaviorRepo(), st.EventRepo(), cfg.Flow, cfg.DailyGoalMinutes)
	return engine, st, nil
}
