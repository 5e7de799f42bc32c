package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Format(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "callback set",
			event:    CallbackUpdated{Client: filled(1), Owner: filled(2), Defined: true},
			expected: "CallbackUpdated: set for " + ones + " by " + twos,
		},
		{
			name:     "callback unset",
			event:    CallbackUpdated{Client: filled(1), Owner: filled(2)},
			expected: "CallbackUpdated: unset for " + ones + " by " + twos,
		},
		{
			name:     "called back",
			event:    CalledBack{Program: filled(3)},
			expected: "CalledBack: " + threes,
		},
		{
			name:     "fulfilled",
			event:    Fulfilled{Seed: sequential(), Client: filled(1), Randomness: saturated()},
			expected: "Fulfilled: " + sequentialSeed + " for " + ones + " with " + maxRandomness,
		},
		{
			name:     "registered",
			event:    Registered{Client: filled(1), Program: filled(3), State: Pubkey{}, Owner: filled(2)},
			expected: "Registered: " + ones + " as " + threes + " with 11111111111111111111111111111111 by " + twos,
		},
		{
			name:     "requested with request-level callback",
			event:    Requested{Seed: sequential(), Client: filled(1), Callback: &Callback{}, CallbackOverride: true},
			expected: "Requested: " + sequentialSeed + " by " + ones + " with request-level callback",
		},
		{
			name:     "requested with client-level callback",
			event:    Requested{Seed: sequential(), Client: filled(1), Callback: &Callback{}},
			expected: "Requested: " + sequentialSeed + " by " + ones + " with client-level callback",
		},
		{
			name:     "requested without callback",
			event:    Requested{Seed: sequential(), Client: filled(1), CallbackOverride: true},
			expected: "Requested: " + sequentialSeed + " by " + ones + " without callback",
		},
		{
			name:     "requested alt with callback",
			event:    RequestedAlt{Seed: sequential(), Client: filled(1), Callback: &CallbackAlt{}},
			expected: "Requested (ALT): " + sequentialSeed + " by " + ones + " with request-level callback",
		},
		{
			name:     "requested alt without callback",
			event:    RequestedAlt{Seed: sequential(), Client: filled(1)},
			expected: "Requested (ALT): " + sequentialSeed + " by " + ones + " without callback",
		},
		{
			name:     "responded repeats the client",
			event:    Responded{Client: filled(1), Seed: sequential(), Randomness: saturated()},
			expected: "Responded: " + ones + " to " + sequentialSeed + " of " + ones + " with " + maxRandomness,
		},
		{
			name:     "transferred",
			event:    Transferred{Client: filled(1), Owner: filled(2), NewOwner: filled(3)},
			expected: "Transferred: " + ones + " from " + twos + " to " + threes,
		},
		{
			name:     "withdrawn",
			event:    Withdrawn{Client: filled(1), Owner: filled(2), Amount: 1_500_000_000},
			expected: "Withdrawn: 1.5 SOL from " + ones + " by " + twos,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.event))
			assert.Equal(t, Format(tt.event), Format(tt.event))
		})
	}

	t.Run("nil event", func(t *testing.T) {
		assert.Equal(t, "", Format(nil))
	})
}

func Test_LamportsToSol(t *testing.T) {
	tests := map[uint64]string{
		0:                 "0",
		1:                 "0.000000001",
		1_000_000_000:     "1",
		1_500_000_000:     "1.5",
		123_456_789_000:   "123.456789",
		2_000_000_000_000: "2000",
	}
	for lamports, expected := range tests {
		assert.Equal(t, expected, LamportsToSol(lamports), lamports)
	}
}
