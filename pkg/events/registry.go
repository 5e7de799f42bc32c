package events

import (
	"encoding/json"

	bin "github.com/gagliardetto/binary"
)

type registration struct {
	kind          Kind
	discriminator Discriminator
	decode        func(dec *bin.Decoder) (Event, error)
	fromJSON      func(data []byte) (Event, error)
}

func register[T Event, P interface {
	*T
	borshDecodable
}](kind Kind, d Discriminator) registration {
	return registration{
		kind:          kind,
		discriminator: d,
		decode: func(dec *bin.Decoder) (Event, error) {
			var record T
			if err := P(&record).UnmarshalWithDecoder(dec); err != nil {
				return nil, err
			}
			return record, nil
		},
		fromJSON: func(data []byte) (Event, error) {
			var record T
			if err := json.Unmarshal(data, &record); err != nil {
				return nil, err
			}
			return record, nil
		},
	}
}

func lookup(kind Kind) (registration, bool) {
	for _, r := range registry {
		if r.kind == kind {
			return r, true
		}
	}
	return registration{}, false
}

// registry is the dispatch table. Its order is the matching order of
// TryFromBytes: the first discriminator that prefixes the input wins.
var registry = []registration{
	register[CallbackUpdated](KindCallbackUpdated, CallbackUpdatedDiscriminator),
	register[CalledBack](KindCalledBack, CalledBackDiscriminator),
	register[Fulfilled](KindFulfilled, FulfilledDiscriminator),
	register[Registered](KindRegistered, RegisteredDiscriminator),
	register[Requested](KindRequested, RequestedDiscriminator),
	register[RequestedAlt](KindRequestedAlt, RequestedAltDiscriminator),
	register[Responded](KindResponded, RespondedDiscriminator),
	register[Transferred](KindTransferred, TransferredDiscriminator),
	register[Withdrawn](KindWithdrawn, WithdrawnDiscriminator),
}

// Kinds returns the known event kinds in matching order.
func Kinds() []Kind {
	kinds := make([]Kind, len(registry))
	for i, r := range registry {
		kinds[i] = r.kind
	}
	return kinds
}

// DiscriminatorOf returns the discriminator of a known kind.
func DiscriminatorOf(kind Kind) (Discriminator, bool) {
	r, ok := lookup(kind)
	return r.discriminator, ok
}
