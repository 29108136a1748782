package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/we"
)

func newModel(t *testing.T) (Model, *counter.Controller, *channelDisplay) {
	ctx := context.Background()
	controller := counter.New(counter.NewCounterService(we.NewMemoryEventStore()))

	display := newChannelDisplay()
	_, err := controller.Subscribe(ctx, display)
	require.NoError(t, err)

	return NewModel(ctx, controller, <-display.views, display.views), controller, display
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	for _, key := range keys {
		updated, _ := m.Update(key)
		m = updated.(Model)
	}

	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel(t *testing.T) {
	t.Run("shows the initial value", func(t *testing.T) {
		m, _, _ := newModel(t)

		assert.Contains(t, m.View(), "Counter: 0")
		assert.Contains(t, m.View(), keyHelp)
	})

	t.Run("applies key presses synchronously", func(t *testing.T) {
		m, _, _ := newModel(t)

		m = press(t, m, runes("+"), runes("+"), tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, int64(3), m.Value())
		assert.Contains(t, m.View(), "Counter: 3")

		m = press(t, m, runes("-"), tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, int64(1), m.Value())

		m = press(t, m, runes("r"))
		assert.Equal(t, int64(0), m.Value())
	})

	t.Run("ignores other keys", func(t *testing.T) {
		m, _, _ := newModel(t)

		m = press(t, m, runes("x"))
		assert.Equal(t, int64(0), m.Value())
	})

	t.Run("quits", func(t *testing.T) {
		m, _, _ := newModel(t)

		_, cmd := m.Update(runes("q"))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())

		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("follows commands from other surfaces", func(t *testing.T) {
		m, controller, _ := newModel(t)

		_, err := controller.Increment(context.Background())
		require.NoError(t, err)
		_, err = controller.Increment(context.Background())
		require.NoError(t, err)

		// only the latest undelivered view is kept
		msg := m.listen()()
		updated, cmd := m.Update(msg)
		m = updated.(Model)

		assert.Equal(t, int64(2), m.Value())
		assert.NotNil(t, cmd)
	})

	t.Run("ignores stale views", func(t *testing.T) {
		m, _, _ := newModel(t)

		m = press(t, m, runes("+"))
		stale := m.view

		m = press(t, m, runes("+"))
		updated, _ := m.Update(viewMsg(stale))

		assert.Equal(t, int64(2), updated.(Model).Value())
	})

	t.Run("orders views by sequence rather than revision", func(t *testing.T) {
		m, _, _ := newModel(t)

		m = press(t, m, runes("+"))
		later := counter.View{Value: 7, Label: "Counter: 7", Revision: we.InitialRevision, Sequence: m.view.Sequence + 1}

		updated, _ := m.Update(viewMsg(later))
		assert.Equal(t, int64(7), updated.(Model).Value())
	})
}
