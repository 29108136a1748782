package counter

import (
	"strings"

	"github.com/weegigs/wee-counter-go/we"
)

const (
	IncrementCmd = we.CommandName("counter:increment")
	DecrementCmd = we.CommandName("counter:decrement")
	ResetCmd     = we.CommandName("counter:reset")
)

type Increment struct{}

func (Increment) TypeName() string {
	return IncrementCmd.String()
}

type Decrement struct{}

func (Decrement) TypeName() string {
	return DecrementCmd.String()
}

type Reset struct{}

func (Reset) TypeName() string {
	return ResetCmd.String()
}

var aliases = map[string]we.Command{
	"+":                   Increment{},
	"inc":                 Increment{},
	"increment":           Increment{},
	IncrementCmd.String(): Increment{},
	"-":                   Decrement{},
	"dec":                 Decrement{},
	"decrement":           Decrement{},
	DecrementCmd.String(): Decrement{},
	"0":                   Reset{},
	"reset":               Reset{},
	ResetCmd.String():     Reset{},
}

// Parse maps user input to a command. Matching ignores case and surrounding space.
func Parse(input string) (we.Command, error) {
	name := strings.ToLower(strings.TrimSpace(input))

	command, ok := aliases[name]
	if !ok {
		return nil, we.CommandNotFound(we.CommandName(name))
	}

	return command, nil
}
