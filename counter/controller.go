package counter

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/we"
)

type ControllerOption func(*Controller)

func WithLogger(logger *zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.log = logger
	}
}

func WithAggregate(id we.AggregateId) ControllerOption {
	return func(c *Controller) {
		c.id = id
	}
}

// Controller owns a single counter. Commands are applied one at a time: the
// command lock is held from loading the state until every display has rendered
// the result.
type Controller struct {
	lk       sync.Mutex
	id       we.AggregateId
	service  CounterService
	displays []*subscription
	applied  uint64
	log      *zerolog.Logger
}

type subscription struct {
	display Display
}

func New(service CounterService, options ...ControllerOption) *Controller {
	c := &Controller{
		id:      DefaultAggregate,
		service: service,
	}

	for _, option := range options {
		option(c)
	}

	if c.log == nil {
		c.log = &log.Logger
	}

	return c
}

func ProvideController(service CounterService, logger *zerolog.Logger) *Controller {
	return New(service, WithLogger(logger))
}

func (c *Controller) Aggregate() we.AggregateId {
	return c.id
}

func (c *Controller) Current(ctx context.Context) (View, error) {
	c.lk.Lock()
	defer c.lk.Unlock()

	return c.current(ctx)
}

func (c *Controller) current(ctx context.Context) (View, error) {
	entity, err := c.service.Load(ctx, c.id)
	if err != nil {
		return View{}, errors.Wrap(err, "failed to load counter")
	}

	view := viewOf(entity, "")
	view.Sequence = c.applied

	return view, nil
}

// Execute applies command and publishes the resulting view to every display
// before returning it.
func (c *Controller) Execute(ctx context.Context, command we.Command) (View, error) {
	name := we.CommandNameOf(command)

	c.lk.Lock()
	defer c.lk.Unlock()

	entity, err := c.service.Execute(ctx, c.id, command)
	if err != nil {
		c.log.Debug().Err(err).Str("command", name.String()).Msg("command rejected")
		return View{}, errors.Wrapf(err, "failed to execute %s", name)
	}

	c.applied++
	view := viewOf(entity, name)
	view.Sequence = c.applied
	c.log.Debug().
		Str("command", name.String()).
		Int64("value", view.Value).
		Str("revision", view.Revision.String()).
		Msg("command applied")

	for _, s := range c.displays {
		s.display.Render(view)
	}

	return view, nil
}

func (c *Controller) Increment(ctx context.Context) (View, error) {
	return c.Execute(ctx, Increment{})
}

func (c *Controller) Decrement(ctx context.Context) (View, error) {
	return c.Execute(ctx, Decrement{})
}

func (c *Controller) Reset(ctx context.Context) (View, error) {
	return c.Execute(ctx, Reset{})
}

// Subscribe registers display and renders the current view to it straight away.
// The returned function removes the display; it must not be called from Render.
func (c *Controller) Subscribe(ctx context.Context, display Display) (func(), error) {
	c.lk.Lock()
	defer c.lk.Unlock()

	view, err := c.current(ctx)
	if err != nil {
		return nil, err
	}

	s := &subscription{display: display}
	c.displays = append(c.displays, s)
	display.Render(view)

	return func() { c.unsubscribe(s) }, nil
}

func (c *Controller) unsubscribe(s *subscription) {
	c.lk.Lock()
	defer c.lk.Unlock()

	for i, candidate := range c.displays {
		if candidate == s {
			c.displays = append(c.displays[:i:i], c.displays[i+1:]...)
			return
		}
	}
}
