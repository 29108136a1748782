package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/weegigs/wee-counter-go/connectors/console"
)

func consoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Drive the counter from the terminal, one command per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config()
			if err != nil {
				return err
			}

			app, cleanup, err := initialize(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return console.New(app.controller, os.Stdin, os.Stdout, console.Logger(app.log)).Run(cmd.Context())
		},
	}
	return cmd
}
