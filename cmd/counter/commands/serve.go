package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counter web view and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config()
			if err != nil {
				return err
			}

			srv, cleanup, err := newServer(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return srv.run(cmd.Context())
		},
	}

	cmd.Flags().String("listen", ":9080", "address to listen on")
	cmd.Flags().Float64("rate-limit", 20, "command requests per second per client, 0 disables")
	cmd.Flags().Int("rate-burst", 40, "command request burst per client")

	return cmd
}

func (s *server) run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.log.Warn().Err(err).Msg("failed to shut down cleanly")
		}
	}()

	s.log.Info().Str("addr", s.http.Addr).Str("tracing", s.tracing.Exporter).Msg("listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server failed")
	}

	return nil
}
