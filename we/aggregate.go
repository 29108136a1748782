package we

// Aggregate is the ordered event history of a single aggregate as held by a store.
type Aggregate struct {
	Id       AggregateId     `json:"id"`
	Events   []RecordedEvent `json:"events,omitempty"`
	Revision Revision        `json:"revision"`
}
