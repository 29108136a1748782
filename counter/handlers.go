package counter

import (
	"context"

	"github.com/weegigs/wee-counter-go/we"
)

// commands
func increment() we.CommandHandler[Counter] {
	var handler we.CommandHandlerFunction[Counter, Increment] = func(ctx context.Context, cmd Increment, state we.Entity[Counter], publish we.EventPublisher) error {
		return publish(ctx, state.Aggregate, we.Options(we.WithExpectedRevision(state.Revision)), Incremented{Amount: 1})
	}

	return handler
}

func decrement() we.CommandHandler[Counter] {
	var handler we.CommandHandlerFunction[Counter, Decrement] = func(ctx context.Context, cmd Decrement, state we.Entity[Counter], publish we.EventPublisher) error {
		return publish(ctx, state.Aggregate, we.Options(we.WithExpectedRevision(state.Revision)), Decremented{Amount: 1})
	}

	return handler
}

func reset() we.CommandHandler[Counter] {
	var handler we.CommandHandlerFunction[Counter, Reset] = func(ctx context.Context, cmd Reset, state we.Entity[Counter], publish we.EventPublisher) error {
		return publish(ctx, state.Aggregate, we.Options(we.WithExpectedRevision(state.Revision)), Zeroed{})
	}

	return handler
}

func CommandHandlers() we.CommandHandlers[Counter] {
	return we.CommandHandlers[Counter]{
		IncrementCmd: increment(),
		DecrementCmd: decrement(),
		ResetCmd:     reset(),
	}
}
