package we

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

type Reducers[T any] map[EventType]Reducer[T]

// Renderer folds an aggregate's events into entity state, starting from the zero
// value of T. Events without a reducer are skipped.
type Renderer[T any] struct {
	Reducers Reducers[T]
}

func (r *Renderer[T]) Render(ctx context.Context, aggregate Aggregate) (Entity[T], error) {
	var state T

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("render %s", NameOf(state)))
	defer span.End()

	for i := range aggregate.Events {
		event := &aggregate.Events[i]

		reducer := r.Reducers[event.EventType]
		if nil == reducer {
			continue
		}

		if err := reducer.Reduce(ctx, &state, event); err != nil {
			return Entity[T]{}, errors.Wrap(
				err,
				fmt.Sprintf("failed to process update with %s", event.EventType),
			)
		}
	}

	return Entity[T]{
		Aggregate: aggregate.Id,
		Revision:  aggregate.Revision,
		Type:      EntityTypeOf(state),
		State:     &state,
	}, nil
}
