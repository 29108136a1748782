package we

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevisions(t *testing.T) {
	t.Run("converts to ISO datetime", func(t *testing.T) {
		timestamp := string(InitialRevision.Timestamp())
		assert.Equal(t, time.Unix(0, 0).UTC().Format(RFC3339Milli), timestamp)

		now := time.Now()
		revision := NewRevisionGenerator().NewRevision(now)

		assert.Equal(t, now.UTC().Format(RFC3339Milli), string(revision.Timestamp()))
	})

	t.Run("sorts within the same millisecond", func(t *testing.T) {
		now := time.Now()
		generator := NewRevisionGenerator()

		first := generator.NewRevision(now)
		second := generator.NewRevision(now)

		assert.Less(t, first.String(), second.String())
		assert.Less(t, InitialRevision.String(), first.String())
	})
}

func TestAggregateIds(t *testing.T) {
	id := AggregateId{Type: "counter", Key: "session.main"}

	encoded := id.Encode()
	assert.Equal(t, EncodedAggregateId("counter.session.main"), encoded)

	decoded, err := encoded.Decode()
	assert.NoError(t, err)
	assert.Equal(t, id, decoded)

	_, err = EncodedAggregateId("counter").Decode()
	assert.Error(t, err)
}
