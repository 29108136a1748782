package we

import "context"

type Reducer[T any] interface {
	Reduce(ctx context.Context, state *T, evt *RecordedEvent) error
}

type ReducerFunction[T any, E any] func(state *T, evt *E) error

func (f ReducerFunction[T, E]) Reduce(ctx context.Context, state *T, evt *RecordedEvent) error {
	var event E
	if err := UnmarshalFromData(ctx, evt.Data, &event); err != nil {
		return err
	}

	return f(state, &event)
}
