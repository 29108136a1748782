package we

import (
	"context"
	"sync"
	"time"

	"github.com/google/wire"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

var Session = wire.NewSet(
	SessionJournal,
	wire.Bind(new(EventStore), new(*MemoryEventStore)),
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type MemoryStoreOption func(*MemoryEventStore)

func WithClock(clock Clock) MemoryStoreOption {
	return func(store *MemoryEventStore) {
		store.clock = clock
	}
}

// MemoryEventStore keeps event streams for the lifetime of the process. It is the
// session journal; nothing survives a restart.
type MemoryEventStore struct {
	lk        sync.RWMutex
	streams   map[EncodedAggregateId][]RecordedEvent
	clock     Clock
	revisions *RevisionGenerator
}

func NewMemoryEventStore(options ...MemoryStoreOption) *MemoryEventStore {
	store := &MemoryEventStore{
		streams:   make(map[EncodedAggregateId][]RecordedEvent),
		clock:     systemClock{},
		revisions: NewRevisionGenerator(),
	}

	for _, option := range options {
		option(store)
	}

	return store
}

// SessionJournal is the provider used by the injectors.
func SessionJournal() *MemoryEventStore {
	return NewMemoryEventStore()
}

func (s *MemoryEventStore) Load(ctx context.Context, id AggregateId) (Aggregate, error) {
	if err := ctx.Err(); err != nil {
		return Aggregate{}, err
	}

	s.lk.RLock()
	defer s.lk.RUnlock()

	stream := s.streams[id.Encode()]
	events := make([]RecordedEvent, len(stream))
	copy(events, stream)

	return Aggregate{
		Id:       id,
		Events:   events,
		Revision: revisionOf(events),
	}, nil
}

func (s *MemoryEventStore) Publish(ctx context.Context, aggregateId AggregateId, options PublishOptions, events ...DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	s.lk.Lock()
	defer s.lk.Unlock()

	key := aggregateId.Encode()
	stream := s.streams[key]

	expected := options.ExpectedRevision
	if expected != "" && expected != revisionOf(stream) {
		return RevisionConflict
	}

	now := s.clock.Now()
	records := make([]RecordedEvent, len(events))
	for i, event := range events {
		data, err := MarshalToData(event)
		if err != nil {
			return errors.Wrap(err, "failed to marshal event")
		}

		revision := s.revisions.NewRevision(now)
		records[i] = RecordedEvent{
			AggregateId: aggregateId,
			Revision:    revision,
			EventID:     EventID(ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()),
			EventType:   EventTypeOf(event),
			Timestamp:   TimestampFromTime(now),
			Metadata:    options.RecordedEventMetadata,
			Data:        data,
		}
	}

	s.streams[key] = append(stream, records...)

	return nil
}

func revisionOf(events []RecordedEvent) Revision {
	if len(events) == 0 {
		return InitialRevision
	}

	return events[len(events)-1].Revision
}
