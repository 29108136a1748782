package wehttp

import (
	"context"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/google/wire"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/we"
)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// RateLimit throttles command routes per client. A non-positive rps disables it.
func RateLimit(rps float64, burst int) HandlerOption {
	return func(service *httpService) {
		if rps <= 0 {
			service.limiter = nil
			return
		}

		service.limiter = NewLimiterStore(rps, burst)
	}
}

func NewHandler(controller *counter.Controller, options ...HandlerOption) http.Handler {
	service := &httpService{controller: controller, encoder: counter.NewResourceEncoder()}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(withLogging)

	r.Get("/", service.page())
	r.Group(func(r chi.Router) {
		r.Use(service.throttle)
		r.Post("/ui/{command}", service.pageCommand())
	})

	r.Route("/counter", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/", service.getResource())
		r.Group(func(r chi.Router) {
			r.Use(service.throttle)
			r.Post("/", service.executeCommand())
			r.Post("/{command}", service.executeNamedCommand())
		})
	})

	return WithTelemetry(r, "wee-counter")
}

type httpService struct {
	log        *zerolog.Logger
	controller *counter.Controller
	encoder    we.EntityEncoder[counter.Counter]
	limiter    *LimiterStore
}

func (service *httpService) throttle(next http.Handler) http.Handler {
	if service.limiter == nil {
		return next
	}

	return service.limiter.Middleware(next)
}

func (service *httpService) getResource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.controller.Current(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to load counter")
			http.Error(w, "failed to load resource", http.StatusInternalServerError)
			return
		}

		service.encode(w, r, view)
	}
}

func (service *httpService) executeNamedCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		command, err := counter.Parse(chi.URLParam(r, "command"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		service.execute(w, r, command)
	}
}

const maxCommandSize = 1 << 16

type remoteCommand struct {
	Command we.CommandName  `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (service *httpService) executeCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCommandSize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var received remoteCommand
		if err := json.UnmarshalContext(r.Context(), body, &received); err != nil || received.Command == "" {
			service.log.Info().Err(err).Msg("failed to unmarshal command")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		command := we.RemoteCommand{CommandName: received.Command}
		if len(received.Payload) > 0 && string(received.Payload) != "null" {
			command.Payload = we.Data{Encoding: we.JSONEncoding, Data: received.Payload}
		}

		service.execute(w, r, command)
	}
}

func (service *httpService) execute(w http.ResponseWriter, r *http.Request, command we.Command) {
	view, err := service.controller.Execute(r.Context(), command)
	if err != nil {
		status := statusOf(err)
		service.log.Info().Err(err).Str("command", we.CommandNameOf(command).String()).Int("status", status).Msg("failed to execute command")
		http.Error(w, http.StatusText(status), status)
		return
	}

	service.encode(w, r, view)
}

func (service *httpService) encode(w http.ResponseWriter, r *http.Request, view counter.View) {
	if err := service.encoder.Encode(w, r, view.Entity); err != nil {
		service.log.Warn().Err(err).Msg("failed to encode counter")
	}
}

func statusOf(err error) int {
	var notFound we.CommandNotFoundError
	var payload *we.InvalidPayloadError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &payload):
		return http.StatusBadRequest
	case errors.Is(err, we.RevisionConflict):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var Set = wire.NewSet(ProvideHandler, NewServer)
