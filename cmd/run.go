package cmd

import (
	"fmt"

	"github.com/ivelina/tendril/internal/app"
	"github.com/spf13/cobra"
)

// runApp resolves paths and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	cfgPath, _ := cmd.Flags().GetString("config")

	return app.Run(app.Options{
		DBPath:     dbPath,
		ConfigPath: cfgPath,
	})
}
