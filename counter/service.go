package counter

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-counter-go/we"
)

type CounterService = we.EntityService[Counter]

// DefaultAggregate is the one counter every surface drives.
var DefaultAggregate = we.AggregateId{Type: string(EntityType), Key: "default"}

func Loader(store we.EventStore) *we.EntityLoader[Counter] {
	return we.NewEntityLoader[Counter](store, Reducers())
}

func NewCounterService(store we.EventStore) CounterService {
	dispatcher := &we.RoutedDispatcher[Counter]{Handlers: CommandHandlers(), Publish: store.Publish}

	return we.NewEntityService[Counter](Loader(store), dispatcher)
}

// Serializer renders the counter resource without a float round trip, so values
// beyond 2^53 survive JSON encoding.
func Serializer(entity we.Entity[Counter]) (map[string]any, error) {
	var state Counter
	if entity.State != nil {
		state = *entity.State
	}

	return map[string]any{
		"value": state.Value(),
		"label": state.Label(),
	}, nil
}

func NewResourceEncoder() *we.ResourceEncoder[Counter] {
	encoder := we.NewResourceEncoder[Counter]()
	encoder.Serializer = Serializer

	return encoder
}

var Set = wire.NewSet(
	NewCounterService,
	ProvideController,
)
