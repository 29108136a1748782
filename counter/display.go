package counter

import (
	"fmt"
	"io"

	"github.com/weegigs/wee-counter-go/we"
)

// View is what a display receives after every accepted command.
type View struct {
	Value    int64          `json:"value"`
	Label    string         `json:"label"`
	Revision we.Revision    `json:"revision"`
	Command  we.CommandName `json:"command,omitempty"`
	// Sequence counts the commands the controller had applied when the view was
	// made. Unlike Revision it never goes backwards with the wall clock.
	Sequence uint64 `json:"sequence"`

	Entity we.Entity[Counter] `json:"-"`
}

func viewOf(entity we.Entity[Counter], command we.CommandName) View {
	var state Counter
	if entity.State != nil {
		state = *entity.State
	}

	return View{
		Value:    state.Value(),
		Label:    state.Label(),
		Revision: entity.Revision,
		Command:  command,
		Entity:   entity,
	}
}

// Display is an output surface. Render is called synchronously while the
// controller holds its command lock, so it must not call back into the controller.
type Display interface {
	Render(view View)
}

type DisplayFunc func(view View)

func (f DisplayFunc) Render(view View) {
	f(view)
}

// WriterDisplay prints one label line per render.
type WriterDisplay struct {
	Out io.Writer
}

func (d WriterDisplay) Render(view View) {
	fmt.Fprintln(d.Out, view.Label)
}
