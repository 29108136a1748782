package we

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestMemoryEventStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory event store validation", func(t *testing.T) {
		suite := NewEventStoreValidationSuite(ctx, NewMemoryEventStore())
		suite.Run(t)
	})

	t.Run("stamps events with the store clock", func(t *testing.T) {
		now := time.Date(2024, 3, 9, 10, 11, 12, 13000000, time.UTC)
		store := NewMemoryEventStore(WithClock(fixedClock{now: now}))
		id := AggregateId{Type: "test", Key: "clock"}

		require.NoError(t, store.Publish(ctx, id, Options(), StoreValidationEvent{TestIntValue: 1}))

		aggregate, err := store.Load(ctx, id)
		require.NoError(t, err)
		require.Len(t, aggregate.Events, 1)

		assert.Equal(t, Timestamp("2024-03-09T10:11:12.013Z"), aggregate.Events[0].Timestamp)
		assert.Equal(t, aggregate.Events[0].Timestamp, aggregate.Revision.Timestamp())
		assert.Equal(t, EventType("we:store-validation-event"), aggregate.Events[0].EventType)
	})

	t.Run("ignores empty publications", func(t *testing.T) {
		store := NewMemoryEventStore()
		id := AggregateId{Type: "test", Key: "empty"}

		require.NoError(t, store.Publish(ctx, id, Options(WithExpectedRevision("not-a-revision"))))

		aggregate, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, InitialRevision, aggregate.Revision)
	})

	t.Run("isolates loaded events from later publications", func(t *testing.T) {
		store := NewMemoryEventStore()
		id := AggregateId{Type: "test", Key: "isolation"}

		require.NoError(t, store.Publish(ctx, id, Options(), StoreValidationEvent{TestIntValue: 1}))
		before, err := store.Load(ctx, id)
		require.NoError(t, err)

		require.NoError(t, store.Publish(ctx, id, Options(WithExpectedRevision(before.Revision)), StoreValidationEvent{TestIntValue: 2}))

		assert.Len(t, before.Events, 1)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		store := NewMemoryEventStore()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Load(cancelled, AggregateId{Type: "test", Key: "cancelled"})
		assert.ErrorIs(t, err, context.Canceled)

		err = store.Publish(cancelled, AggregateId{Type: "test", Key: "cancelled"}, Options(), StoreValidationEvent{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
