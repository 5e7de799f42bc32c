package events

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// TryFromBytes decodes an event from the bytes of a `Program data: <base64>`
// log record, already decoded from base64.
//
// Registered kinds are tried in the order of Kinds. The first one whose
// discriminator prefixes b is decoded from the remaining bytes and returned.
// The returned error is always a *DecodeError matching ErrInvalidData.
func TryFromBytes(b []byte) (Event, error) {
	return dispatch(registry, b)
}

func dispatch(table []registration, b []byte) (Event, error) {
	for _, r := range table {
		if !r.discriminator.IsPrefixOf(b) {
			continue
		}
		ev, err := r.decode(bin.NewBorshDecoder(b[DiscriminatorLength:]))
		if err != nil {
			return nil, malformedPayload(r.kind, err)
		}
		return ev, nil
	}
	return nil, unknownEvent()
}

// Encode serializes an event the way the program writes it: discriminator
// followed by the Borsh-encoded record.
func Encode(ev Event) ([]byte, error) {
	if ev == nil {
		return nil, errors.New("cannot encode a nil event")
	}
	d, ok := DiscriminatorOf(ev.Kind())
	if !ok {
		return nil, errors.Errorf("unknown event kind '%s'", ev.Kind())
	}
	record, ok := ev.(borshEncodable)
	if !ok {
		return nil, errors.Errorf("event kind '%s' is not encodable", ev.Kind())
	}

	var buf bytes.Buffer
	buf.Write(d[:])
	if err := record.MarshalWithEncoder(bin.NewBorshEncoder(&buf)); err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", ev.Kind())
	}
	return buf.Bytes(), nil
}
