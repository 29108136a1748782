package we

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceEncoder(t *testing.T) {
	ctx := context.Background()
	id := AggregateId{Type: "tally", Key: "encoded"}

	service := tallyService(NewMemoryEventStore())
	entity, err := service.Execute(ctx, id, add{Amount: 3})
	require.NoError(t, err)

	t.Run("serializes the state fields", func(t *testing.T) {
		resource, err := NewResourceEncoder[tally]().Resource(entity)
		require.NoError(t, err)

		assert.Equal(t, float64(3), resource["total"])
		assert.Equal(t, id.Encode(), resource["$id"])
		assert.Equal(t, entity.Revision, resource["$revision"])
	})

	t.Run("writes json", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		err := NewResourceEncoder[tally]().Encode(recorder, httptest.NewRequest(http.MethodGet, "/", nil), entity)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "tally.encoded", body["$id"])
		assert.Equal(t, entity.Revision.String(), body["$revision"])
	})
}
