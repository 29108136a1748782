package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
)

const help = `commands:
  +, inc, increment   add one
  -, dec, decrement   subtract one
  0, reset            back to zero
  help                show this help
  q, quit             leave`

type Option func(*Console)

func Logger(log *zerolog.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

// Console drives the counter from line input. Every accepted command is followed
// by the label line of the new value.
type Console struct {
	controller *counter.Controller
	in         io.Reader
	out        io.Writer
	log        *zerolog.Logger
}

func New(controller *counter.Controller, in io.Reader, out io.Writer, options ...Option) *Console {
	c := &Console{controller: controller, in: in, out: out}
	for _, option := range options {
		option(c)
	}
	if c.log == nil {
		c.log = &log.Logger
	}

	return c
}

// Run reads commands until quit, end of input or cancellation.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe, err := c.controller.Subscribe(ctx, counter.WriterDisplay{Out: c.out})
	if err != nil {
		return err
	}
	defer unsubscribe()

	lines, errs := c.read(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errors.Wrap(<-errs, "failed to read input")
			}

			done, err := c.handle(ctx, line)
			if done || err != nil {
				return err
			}
		}
	}
}

// read scans input on its own goroutine so a blocked read does not hold up
// cancellation. errs receives exactly one value before lines is closed.
func (c *Console) read(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}

		errs <- scanner.Err()
	}()

	return lines, errs
}

func (c *Console) handle(ctx context.Context, input string) (bool, error) {
	line := strings.TrimSpace(input)
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(c.out, help)
		return false, nil
	}

	command, err := counter.Parse(line)
	if err != nil {
		c.log.Debug().Str("input", line).Msg("unrecognised input")
		fmt.Fprintf(c.out, "unknown command %q, type help for a list\n", line)
		return false, nil
	}

	_, err = c.controller.Execute(ctx, command)

	return false, err
}
