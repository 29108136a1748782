package commands

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/support"
)

type application struct {
	controller *counter.Controller
	log        *zerolog.Logger
	tracing    *support.Tracing
}

type server struct {
	http    *http.Server
	log     *zerolog.Logger
	tracing *support.Tracing
}
