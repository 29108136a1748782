package commands

import (
	"github.com/spf13/cobra"

	"github.com/weegigs/wee-counter-go/connectors/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the counter in a terminal window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config()
			if err != nil {
				return err
			}

			// the window owns the terminal
			if cfg.LogFile == "" {
				cfg.LogLevel = "disabled"
			}

			app, cleanup, err := initialize(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(cmd.Context(), app.controller)
		},
	}
	return cmd
}
