package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weegigs/wee-counter-go/support"
)

var settings = support.NewViper()

func Execute() error {
	root := &cobra.Command{
		Use:          "counter",
		Short:        "An interactive counter: increment, decrement, reset",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return settings.BindPFlags(cmd.Flags())
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.String("trace-exporter", "none", "trace exporter (none, stdout, otlp, jaeger)")
	flags.String("otlp-endpoint", "localhost:4317", "OTLP gRPC collector endpoint")
	flags.Bool("otlp-insecure", false, "disable TLS for the OTLP exporter")
	flags.String("jaeger-endpoint", "", "Jaeger collector endpoint")

	root.AddCommand(consoleCmd(), tuiCmd(), serveCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return root.ExecuteContext(ctx)
}

func config() (support.Config, error) {
	return support.LoadConfig(settings)
}
