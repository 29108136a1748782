package counter

import "github.com/weegigs/wee-counter-go/we"

func incremented() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, Incremented] = func(counter *Counter, incremented *Incremented) error {
		*counter = counter.Add(incremented.Amount)
		return nil
	}

	return reducer
}

func decremented() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, Decremented] = func(counter *Counter, decremented *Decremented) error {
		*counter = counter.Add(-decremented.Amount)
		return nil
	}

	return reducer
}

func zeroed() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, Zeroed] = func(counter *Counter, _ *Zeroed) error {
		*counter = counter.Zeroed()
		return nil
	}

	return reducer
}

func Reducers() we.Reducers[Counter] {
	return we.Reducers[Counter]{
		IncrementedEvent: incremented(),
		DecrementedEvent: decremented(),
		ZeroedEvent:      zeroed(),
	}
}
