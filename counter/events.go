package counter

import "github.com/weegigs/wee-counter-go/we"

const (
	IncrementedEvent = we.EventType("counter:incremented")
	DecrementedEvent = we.EventType("counter:decremented")
	ZeroedEvent      = we.EventType("counter:zeroed")
)

type Incremented struct {
	Amount int64 `json:"amount"`
}

func (Incremented) EventType() we.EventType {
	return IncrementedEvent
}

type Decremented struct {
	Amount int64 `json:"amount"`
}

func (Decremented) EventType() we.EventType {
	return DecrementedEvent
}

type Zeroed struct{}

func (Zeroed) EventType() we.EventType {
	return ZeroedEvent
}
