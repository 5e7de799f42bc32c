package events

import (
	"io"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// borshDecodable is implemented by every record pointer.
type borshDecodable interface {
	UnmarshalWithDecoder(dec *bin.Decoder) error
}

// borshEncodable is implemented by every record value.
type borshEncodable interface {
	MarshalWithEncoder(enc *bin.Encoder) error
}

var errBadBool = errors.New("borsh: improperly encoded boolean value")

func readFixed(dec *bin.Decoder, dst []byte, field string) error {
	raw, err := dec.ReadNBytes(len(dst))
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", field)
	}
	copy(dst, raw)
	return nil
}

func readPubkey(dec *bin.Decoder, p *Pubkey, field string) error {
	return readFixed(dec, p[:], field)
}

// readBool accepts only 0 and 1, matching borsh-rs.
func readBool(dec *bin.Decoder, field string) (bool, error) {
	b, err := dec.ReadUint8()
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", field)
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(errBadBool, "failed to read %s", field)
	}
}

// readOption reads the one byte presence tag of an Option<T>.
func readOption(dec *bin.Decoder, field string) (bool, error) {
	return readBool(dec, field)
}

// readLength reads a u32 vector length and rejects lengths that cannot fit
// in the remaining input, given the minimal encoded size of one element.
func readLength(dec *bin.Decoder, elemSize int, field string) (int, error) {
	n, err := dec.ReadUint32(bin.LE)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s length", field)
	}
	if uint64(n)*uint64(elemSize) > uint64(dec.Remaining()) {
		return 0, errors.Wrapf(io.ErrUnexpectedEOF, "%s length %d exceeds remaining input", field, n)
	}
	return int(n), nil
}

func readBytes(dec *bin.Decoder, field string) ([]byte, error) {
	n, err := readLength(dec, 1, field)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if err := readFixed(dec, out, field); err != nil {
		return nil, err
	}
	return out, nil
}

func writeBool(enc *bin.Encoder, v bool) error {
	if v {
		return enc.WriteUint8(1)
	}
	return enc.WriteUint8(0)
}

func writeBytes(enc *bin.Encoder, b []byte) error {
	if err := enc.WriteUint32(uint32(len(b)), bin.LE); err != nil {
		return err
	}
	return enc.WriteBytes(b, false)
}
