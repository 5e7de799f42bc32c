package events

import (
	"crypto/sha256"
	"encoding/hex"
)

const DiscriminatorLength = 8

// Discriminator is the fixed prefix that identifies an event kind.
type Discriminator [DiscriminatorLength]byte

// Discriminators of the known events: the first 8 bytes of sha256("event:<Name>").
var (
	CallbackUpdatedDiscriminator = Discriminator{73, 115, 171, 177, 42, 193, 178, 202}
	CalledBackDiscriminator      = Discriminator{80, 119, 132, 128, 66, 146, 64, 21}
	FulfilledDiscriminator       = Discriminator{210, 174, 131, 213, 40, 182, 83, 110}
	RegisteredDiscriminator      = Discriminator{11, 222, 10, 72, 160, 110, 165, 227}
	RequestedDiscriminator       = Discriminator{193, 152, 94, 182, 138, 135, 173, 205}
	RequestedAltDiscriminator    = Discriminator{35, 45, 235, 194, 198, 184, 209, 54}
	RespondedDiscriminator       = Discriminator{126, 30, 4, 36, 65, 90, 60, 218}
	TransferredDiscriminator     = Discriminator{21, 132, 239, 64, 146, 239, 166, 68}
	WithdrawnDiscriminator       = Discriminator{20, 89, 223, 198, 194, 124, 219, 13}
)

// EventDiscriminator derives the discriminator of the event with the given name.
func EventDiscriminator(name string) Discriminator {
	sum := sha256.Sum256([]byte("event:" + name))
	var d Discriminator
	copy(d[:], sum[:DiscriminatorLength])
	return d
}

func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// IsPrefixOf reports whether b starts with the discriminator.
func (d Discriminator) IsPrefixOf(b []byte) bool {
	return len(b) >= DiscriminatorLength && Discriminator(b[:DiscriminatorLength]) == d
}
