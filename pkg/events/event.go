// Package events decodes and formats the events emitted by the VRF callback
// program into its transaction logs.
//
// An event is serialized as an 8 byte discriminator followed by the
// Borsh-encoded record. TryFromBytes classifies raw bytes against the known
// discriminators and decodes the matching record; Format renders it as a
// single summary line.
package events

import "fmt"

// Kind names an event variant.
type Kind string

const (
	KindCallbackUpdated Kind = "CallbackUpdated"
	KindCalledBack      Kind = "CalledBack"
	KindFulfilled       Kind = "Fulfilled"
	KindRegistered      Kind = "Registered"
	KindRequested       Kind = "Requested"
	KindRequestedAlt    Kind = "RequestedAlt"
	KindResponded       Kind = "Responded"
	KindTransferred     Kind = "Transferred"
	KindWithdrawn       Kind = "Withdrawn"
)

func (k Kind) String() string {
	return string(k)
}

// Event is one decoded program event. It is implemented by the record value
// types of this package only.
//
// The set of events may grow as the program adds new ones, so a type switch
// over an Event must always carry a default case.
type Event interface {
	fmt.Stringer
	Kind() Kind
	isEvent()
}
