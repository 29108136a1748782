package counter

import (
	"strconv"

	"github.com/weegigs/wee-counter-go/we"
)

const EntityType = we.EntityType("counter")

// Counter is the counter state. The zero value is a counter at 0.
//
// Arithmetic wraps at the int64 bounds: incrementing math.MaxInt64 yields
// math.MinInt64 and decrementing it goes back, so every increment is undone by a
// decrement.
type Counter struct {
	Current int64 `json:"value"`
}

func (state *Counter) Value() int64 {
	return state.Current
}

func (state *Counter) Label() string {
	return Label(state.Current)
}

func (Counter) EntityType() we.EntityType {
	return EntityType
}

func (state Counter) Add(amount int64) Counter {
	return Counter{Current: state.Current + amount}
}

func (state Counter) Incremented() Counter {
	return state.Add(1)
}

func (state Counter) Decremented() Counter {
	return state.Add(-1)
}

func (state Counter) Zeroed() Counter {
	return Counter{}
}

// Label is the text a display shows for value.
func Label(value int64) string {
	return "Counter: " + strconv.FormatInt(value, 10)
}
