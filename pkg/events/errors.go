package events

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidData classifies every failure to interpret bytes as an event.
	ErrInvalidData = errors.New("invalid data")
	// ErrUnknownEvent means no known discriminator prefixes the input.
	ErrUnknownEvent = errors.New("unknown discriminator for an event")
	// ErrMalformedPayload means a discriminator matched but the record did not decode.
	ErrMalformedPayload = errors.New("malformed event payload")
)

// DecodeError is returned by TryFromBytes. Both causes match ErrInvalidData;
// use errors.Is with ErrUnknownEvent or ErrMalformedPayload to tell them apart.
type DecodeError struct {
	// Kind is the matched kind, empty for an unknown discriminator.
	Kind Kind
	// Err is the decoder failure for a malformed payload.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidData, ErrUnknownEvent)
	}
	return fmt.Sprintf("%s: %s %s: %v", ErrInvalidData, ErrMalformedPayload, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	if e.Kind == "" {
		return []error{ErrInvalidData, ErrUnknownEvent}
	}
	return []error{ErrInvalidData, ErrMalformedPayload, e.Err}
}

func unknownEvent() error {
	return &DecodeError{}
}

func malformedPayload(kind Kind, err error) error {
	return &DecodeError{Kind: kind, Err: err}
}
