package we

type EntityType string

func (et EntityType) String() string {
	return string(et)
}

type EntityTyped interface {
	EntityType() EntityType
}

func EntityTypeOf(state any) EntityType {
	if named, ok := state.(EntityTyped); ok {
		return named.EntityType()
	}

	return EntityType(NameOf(state))
}

type Entity[T any] struct {
	Aggregate AggregateId
	Revision  Revision
	Type      EntityType
	State     *T
}

// Initialized reports whether anything has been published for the entity.
func (e *Entity[T]) Initialized() bool {
	return e.Revision != InitialRevision
}
