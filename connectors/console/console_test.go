package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/we"
)

func run(t *testing.T, input string) (string, *counter.Controller) {
	logger := zerolog.Nop()
	controller := counter.New(counter.NewCounterService(we.NewMemoryEventStore()))

	var out bytes.Buffer
	err := New(controller, strings.NewReader(input), &out, Logger(&logger)).Run(context.Background())
	require.NoError(t, err)

	return out.String(), controller
}

func TestConsole(t *testing.T) {
	t.Run("renders after every command", func(t *testing.T) {
		out, _ := run(t, "+\n+\n+\n-\nreset\ndec\n")

		assert.Equal(t, strings.Join([]string{
			"Counter: 0",
			"Counter: 1",
			"Counter: 2",
			"Counter: 3",
			"Counter: 2",
			"Counter: 0",
			"Counter: -1",
		}, "\n")+"\n", out)
	})

	t.Run("stops at quit", func(t *testing.T) {
		out, controller := run(t, "increment\nq\nincrement\n")

		assert.Equal(t, "Counter: 0\nCounter: 1\n", out)

		view, err := controller.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.Value)
	})

	t.Run("ignores unknown input", func(t *testing.T) {
		out, controller := run(t, "\ndouble\n+\n")

		assert.Contains(t, out, `unknown command "double"`)
		assert.True(t, strings.HasSuffix(out, "Counter: 1\n"))

		view, err := controller.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.Value)
	})

	t.Run("prints help", func(t *testing.T) {
		out, _ := run(t, "help\n")

		assert.Contains(t, out, "increment")
		assert.Contains(t, out, "reset")
	})

	t.Run("returns on cancellation while waiting for input", func(t *testing.T) {
		logger := zerolog.Nop()
		controller := counter.New(counter.NewCounterService(we.NewMemoryEventStore()))

		in, writer := io.Pipe()
		defer writer.Close()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		var out bytes.Buffer
		go func() {
			done <- New(controller, in, &out, Logger(&logger)).Run(ctx)
		}()

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("stops rendering after it returns", func(t *testing.T) {
		logger := zerolog.Nop()
		controller := counter.New(counter.NewCounterService(we.NewMemoryEventStore()))

		var out bytes.Buffer
		require.NoError(t, New(controller, strings.NewReader("+\n"), &out, Logger(&logger)).Run(context.Background()))

		_, err := controller.Increment(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Counter: 0\nCounter: 1\n", out.String())
	})
}
