//go:build wireinject
// +build wireinject

package commands

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/wee-counter-go/connectors/wehttp"
	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/support"
	"github.com/weegigs/wee-counter-go/we"
)

func initialize(ctx context.Context, cfg support.Config) (*application, func(), error) {
	panic(wire.Build(
		support.Set,
		we.Session,
		counter.Set,
		wire.Struct(new(application), "*"),
	))
}

func newServer(ctx context.Context, cfg support.Config) (*server, func(), error) {
	panic(wire.Build(
		support.Set,
		we.Session,
		counter.Set,
		wehttp.Set,
		wire.Struct(new(server), "*"),
	))
}
