package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weegigs/wee-counter-go/counter"
)

// channelDisplay forwards views to the program without blocking the controller.
// Only the most recent undelivered view is kept.
type channelDisplay struct {
	views chan counter.View
}

func newChannelDisplay() *channelDisplay {
	return &channelDisplay{views: make(chan counter.View, 1)}
}

func (d *channelDisplay) Render(view counter.View) {
	for {
		select {
		case d.views <- view:
			return
		default:
			select {
			case <-d.views:
			default:
			}
		}
	}
}

// Run opens the counter window and blocks until the user quits or ctx ends.
func Run(ctx context.Context, controller *counter.Controller, options ...tea.ProgramOption) error {
	display := newChannelDisplay()

	unsubscribe, err := controller.Subscribe(ctx, display)
	if err != nil {
		return err
	}
	defer unsubscribe()

	initial := <-display.views
	model := NewModel(ctx, controller, initial, display.views)

	options = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, options...)
	_, err = tea.NewProgram(model, options...).Run()

	return err
}
