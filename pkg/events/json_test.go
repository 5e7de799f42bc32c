package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Envelope(t *testing.T) {
	t.Run("Should render keys and byte arrays as base58", func(t *testing.T) {
		data, err := json.Marshal(NewEnvelope(Fulfilled{Seed: sequential(), Client: filled(1), Randomness: saturated()}))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"kind": "Fulfilled",
			"event": {
				"seed": "`+sequentialSeed+`",
				"client": "`+ones+`",
				"randomness": "`+maxRandomness+`"
			}
		}`, string(data))
	})
	t.Run("Should parse every kind back from JSON", func(t *testing.T) {
		for _, ev := range sampleEvents() {
			data, err := json.Marshal(NewEnvelope(ev))
			require.NoError(t, err)

			parsed, err := UnmarshalJSONEvent(data)
			require.NoError(t, err)
			assert.Equal(t, ev, parsed)
		}
	})
	t.Run("Should reject an unknown kind", func(t *testing.T) {
		_, err := UnmarshalJSONEvent([]byte(`{"kind":"Paused","event":{}}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownEvent))
	})
	t.Run("Should reject a malformed key", func(t *testing.T) {
		_, err := UnmarshalJSONEvent([]byte(`{"kind":"CalledBack","event":{"program":"not-base58!"}}`))
		assert.Error(t, err)
	})
}

func Test_Pubkey(t *testing.T) {
	t.Run("Should parse base58", func(t *testing.T) {
		p, err := PubkeyFromBase58(ones)
		require.NoError(t, err)
		assert.Equal(t, filled(1), p)
		assert.False(t, p.IsZero())
	})
	t.Run("Should render the zero key as the system program", func(t *testing.T) {
		assert.Equal(t, "11111111111111111111111111111111", Pubkey{}.String())
		assert.True(t, Pubkey{}.IsZero())
	})
	t.Run("Should reject keys of the wrong length", func(t *testing.T) {
		_, err := PubkeyFromBase58(sequentialSeed[:10])
		assert.Error(t, err)
		_, err = PubkeyFromBase58(maxRandomness)
		assert.Error(t, err)
	})
	t.Run("Should panic on invalid keys when asked to", func(t *testing.T) {
		assert.Panics(t, func() { MustPubkeyFromBase58("0OIl") })
	})
}
