package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/starfishstorage/sfcli/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive UI mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getClient()

		// Fetch before the terminal enters the alternate screen so a
		// failure is reported as a plain error, not inside the UI.
		volumes, err := c.ListVolumes(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch volumes: %w", err)
		}

		app := tui.New(volumes, cfg)
		if err := app.Run(); err != nil {
			return fmt.Errorf("UI error: %w", err)
		}
		return nil
	},
}
