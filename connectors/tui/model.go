package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/we"
)

const keyHelp = "+/↑ increment  -/↓ decrement  r reset  q quit"

type viewMsg counter.View

// Model is the bubbletea model for the counter window. Its own key presses are
// applied synchronously in Update; views published by other surfaces arrive on
// updates.
type Model struct {
	ctx        context.Context
	controller *counter.Controller
	updates    <-chan counter.View
	view       counter.View
	err        error
}

func NewModel(ctx context.Context, controller *counter.Controller, initial counter.View, updates <-chan counter.View) Model {
	return Model{
		ctx:        ctx,
		controller: controller,
		updates:    updates,
		view:       initial,
	}
}

func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.updates == nil {
		return nil
	}

	updates := m.updates
	ctx := m.ctx

	return func() tea.Msg {
		select {
		case view, ok := <-updates:
			if !ok {
				return nil
			}
			return viewMsg(view)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=", "up", "k":
			return m.execute(counter.Increment{})
		case "-", "down", "j":
			return m.execute(counter.Decrement{})
		case "r", "0":
			return m.execute(counter.Reset{})
		}
	case viewMsg:
		m.accept(counter.View(msg))
		return m, m.listen()
	}

	return m, nil
}

func (m Model) execute(command we.Command) (tea.Model, tea.Cmd) {
	view, err := m.controller.Execute(m.ctx, command)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.accept(view)

	return m, nil
}

// accept keeps the newest view; the same view may arrive both from Execute and
// from the subscription.
func (m *Model) accept(view counter.View) {
	if view.Sequence > m.view.Sequence {
		m.view = view
	}
}

func (m Model) Value() int64 {
	return m.view.Value
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.view.Label)
	b.WriteString("\n\n  ")
	b.WriteString(keyHelp)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n  error: ")
		b.WriteString(m.err.Error())
		b.WriteString("\n")
	}

	return b.String()
}
