package we

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type EntityEncoder[T any] interface {
	Encode(w http.ResponseWriter, r *http.Request, e Entity[T]) error
}

type EntitySerializer[T any] func(entity Entity[T]) (map[string]any, error)

// StateSerializer round-trips the entity state through JSON to obtain its fields.
func StateSerializer[T any](entity Entity[T]) (map[string]any, error) {
	serialized, err := json.Marshal(entity.State)
	if err != nil {
		return nil, err
	}

	resource := make(map[string]any)
	if err = json.Unmarshal(serialized, &resource); err != nil {
		return nil, err
	}

	return resource, nil
}

type ResourceEncoder[T any] struct {
	Serializer EntitySerializer[T]
}

func NewResourceEncoder[T any]() *ResourceEncoder[T] {
	return &ResourceEncoder[T]{Serializer: StateSerializer[T]}
}

func (encoder *ResourceEncoder[T]) Resource(e Entity[T]) (map[string]any, error) {
	serialize := encoder.Serializer
	if serialize == nil {
		serialize = StateSerializer[T]
	}

	resource, err := serialize(e)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize entity")
	}

	resource["$id"] = e.Aggregate.Encode()
	resource["$type"] = e.Type
	resource["$revision"] = e.Revision

	return resource, nil
}

func (encoder *ResourceEncoder[T]) Encode(w http.ResponseWriter, r *http.Request, e Entity[T]) error {
	resource, err := encoder.Resource(e)
	if err != nil {
		http.Error(w, "failed to encode resource", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	return json.NewEncoder(w).Encode(resource)
}
