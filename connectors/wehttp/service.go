package wehttp

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/support"
)

func ProvideHandler(controller *counter.Controller, logger *zerolog.Logger, cfg support.Config) http.Handler {
	return NewHandler(controller, Logger(logger), RateLimit(cfg.RateLimit, cfg.RateBurst))
}

func NewServer(cfg support.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
}
