package we

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

// NewEventStoreValidationSuite returns the conformance checks every EventStore
// implementation is expected to pass.
func NewEventStoreValidationSuite(ctx context.Context, store EventStore) *EventStoreValidationSuite {
	return &EventStoreValidationSuite{
		store: store,
		ctx:   ctx,
		faker: faker.New(),
	}
}

type EventStoreValidationSuite struct {
	store EventStore
	ctx   context.Context
	faker faker.Faker
}

type StoreValidationEvent struct {
	TestStringValue string `json:"test_string_value"`
	TestIntValue    int    `json:"test_int_value"`
}

func (s *EventStoreValidationSuite) Run(t *testing.T) {
	t.Run("loads an initial revision", s.LoadInitial)
	t.Run("loads a revision with events", s.LoadsRevisionWithEvents)
	t.Run("publishes single event", s.PublishesSingleEvent)
	t.Run("publishes multiple events in a single transaction", s.PublishesMultipleEvents)
	t.Run("preserves publication order", s.PreservesOrder)
	t.Run("returns a revision conflict with an initial revision", s.RevisionConflictOnInitialRevision)
	t.Run("returns a revision conflict on subsequent revision", s.RevisionConflictOnSubsequentRevision)
	t.Run("supports causation id", s.Causation)
	t.Run("supports correlation id", s.Correlation)
}

func (s *EventStoreValidationSuite) MakeTestAggregateId() AggregateId {
	return AggregateId{
		Type: "go-test",
		Key:  ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String(),
	}
}

func (s *EventStoreValidationSuite) MakeTestEvent() StoreValidationEvent {
	return StoreValidationEvent{
		TestStringValue: s.faker.Lorem().Sentence(10),
		TestIntValue:    s.faker.Int(),
	}
}

func (s *EventStoreValidationSuite) MakeTestEvents(count int) []DomainEvent {
	events := make([]DomainEvent, count)
	for i := 0; i < count; i++ {
		events[i] = s.MakeTestEvent()
	}

	return events
}

func (s *EventStoreValidationSuite) LoadInitial(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()
	aggregate, err := s.store.Load(s.ctx, aggregateId)
	require.NoError(t, err)

	assert.Empty(t, aggregate.Events)
	assert.Equal(t, InitialRevision, aggregate.Revision)
	assert.EqualValues(t, aggregateId, aggregate.Id)
}

func (s *EventStoreValidationSuite) PublishesSingleEvent(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()
	err := s.store.Publish(s.ctx, aggregateId, Options(), s.MakeTestEvent())

	assert.NoError(t, err)
}

func (s *EventStoreValidationSuite) PublishesMultipleEvents(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()
	err := s.store.Publish(s.ctx, aggregateId, Options(), s.MakeTestEvents(17)...)
	require.NoError(t, err)

	aggregate, err := s.store.Load(s.ctx, aggregateId)
	require.NoError(t, err)
	assert.Len(t, aggregate.Events, 17)
}

func (s *EventStoreValidationSuite) LoadsRevisionWithEvents(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()

	err := s.store.Publish(s.ctx, aggregateId, Options(), s.MakeTestEvent())
	require.NoError(t, err)

	aggregate, err := s.store.Load(s.ctx, aggregateId)
	require.NoError(t, err)

	assert.NotEmpty(t, aggregate.Events)
	assert.NotEqual(t, InitialRevision, aggregate.Revision)
	assert.EqualValues(t, aggregateId, aggregate.Id)
}

func (s *EventStoreValidationSuite) PreservesOrder(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()
	events := s.MakeTestEvents(5)

	for _, event := range events {
		require.NoError(t, s.store.Publish(s.ctx, aggregateId, Options(), event))
	}

	aggregate, err := s.store.Load(s.ctx, aggregateId)
	require.NoError(t, err)
	require.Len(t, aggregate.Events, len(events))

	for i, recorded := range aggregate.Events {
		var decoded StoreValidationEvent
		require.NoError(t, UnmarshalFromData(s.ctx, recorded.Data, &decoded))
		assert.Equal(t, events[i], decoded)

		if i > 0 {
			assert.Less(t, aggregate.Events[i-1].Revision.String(), recorded.Revision.String())
		}
	}
}

func (s *EventStoreValidationSuite) Last(id AggregateId) (*RecordedEvent, error) {
	loaded, err := s.store.Load(s.ctx, id)
	if err != nil {
		return nil, err
	}

	length := len(loaded.Events)
	if length == 0 {
		return nil, errors.New("no events found")
	}

	return &loaded.Events[length-1], nil
}

func (s *EventStoreValidationSuite) RevisionConflictOnInitialRevision(t *testing.T) {
	event := s.MakeTestEvent()

	aggregateId := s.MakeTestAggregateId()
	err := s.store.Publish(s.ctx, aggregateId, Options(), event)
	require.NoError(t, err)

	err = s.store.Publish(s.ctx, aggregateId, Options(WithExpectedRevision(InitialRevision)), event)
	assert.Equal(t, RevisionConflict, err)
}

func (s *EventStoreValidationSuite) RevisionConflictOnSubsequentRevision(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()
	event := s.MakeTestEvent()

	err := s.store.Publish(s.ctx, aggregateId, Options(), event)
	require.NoError(t, err)

	first, err := s.store.Load(s.ctx, aggregateId)
	require.NoError(t, err)

	err = s.store.Publish(s.ctx, aggregateId, Options(), event)
	require.NoError(t, err)

	err = s.store.Publish(s.ctx, aggregateId, Options(WithExpectedRevision(first.Revision)), event)
	assert.Equal(t, RevisionConflict, err)
}

func (s *EventStoreValidationSuite) Causation(t *testing.T) {
	event := s.MakeTestEvent()

	aggregateId := s.MakeTestAggregateId()
	err := s.store.Publish(s.ctx, aggregateId, Options(), event)
	require.NoError(t, err)

	first, err := s.Last(aggregateId)
	require.NoError(t, err)

	correlationId := CorrelationID(strings.Join([]string{"event/", first.EventID.String()}, ""))

	err = s.store.Publish(
		s.ctx,
		aggregateId,
		Options(WithCausationId(correlationId, first.EventID)),
		event,
	)
	require.NoError(t, err)

	second, err := s.Last(aggregateId)
	require.NoError(t, err)

	assert.Equal(t, correlationId, second.Metadata.CorrelationId)
	assert.Equal(t, first.EventID, second.Metadata.CausationId)
}

func (s *EventStoreValidationSuite) Correlation(t *testing.T) {
	aggregateId := s.MakeTestAggregateId()
	correlationId := CorrelationID("session/" + s.MakeTestAggregateId().Key)

	err := s.store.Publish(s.ctx, aggregateId, Options(WithCorrelationId(correlationId)), s.MakeTestEvent())
	require.NoError(t, err)

	last, err := s.Last(aggregateId)
	require.NoError(t, err)

	assert.Equal(t, correlationId, last.Metadata.CorrelationId)
	assert.Empty(t, last.Metadata.CausationId)
}
