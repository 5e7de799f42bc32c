package events

import (
	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// RemainingAccount is an extra account passed to a client callback.
type RemainingAccount struct {
	Pubkey     Pubkey `json:"pubkey" yaml:"pubkey"`
	IsWritable bool   `json:"isWritable" yaml:"isWritable"`
}

// Callback is a callback invocation stored with a client or a request.
type Callback struct {
	RemainingAccounts []RemainingAccount `json:"remainingAccounts" yaml:"remainingAccounts"`
	Data              []byte             `json:"data" yaml:"data"`
}

// AltRemainingAccount addresses a remaining account through one of the
// callback's address lookup tables.
type AltRemainingAccount struct {
	TableIndex   uint8 `json:"tableIndex" yaml:"tableIndex"`
	AddressIndex uint8 `json:"addressIndex" yaml:"addressIndex"`
	IsWritable   bool  `json:"isWritable" yaml:"isWritable"`
}

// CallbackAlt is a request-level callback that resolves its accounts via
// address lookup tables.
type CallbackAlt struct {
	LookupTables      []Pubkey              `json:"lookupTables" yaml:"lookupTables"`
	RemainingAccounts []AltRemainingAccount `json:"remainingAccounts" yaml:"remainingAccounts"`
	Data              []byte                `json:"data" yaml:"data"`
}

const (
	remainingAccountSize    = PubkeyLength + 1
	altRemainingAccountSize = 3
)

func (ra *RemainingAccount) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if err = readPubkey(dec, &ra.Pubkey, "remaining account pubkey"); err != nil {
		return err
	}
	ra.IsWritable, err = readBool(dec, "remaining account is_writable")
	return err
}

func (ra RemainingAccount) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteBytes(ra.Pubkey[:], false); err != nil {
		return err
	}
	return writeBool(enc, ra.IsWritable)
}

func (cb *Callback) UnmarshalWithDecoder(dec *bin.Decoder) error {
	n, err := readLength(dec, remainingAccountSize, "remaining accounts")
	if err != nil {
		return err
	}
	cb.RemainingAccounts = make([]RemainingAccount, n)
	for i := range cb.RemainingAccounts {
		if err := cb.RemainingAccounts[i].UnmarshalWithDecoder(dec); err != nil {
			return errors.Wrapf(err, "remaining account %d", i)
		}
	}
	cb.Data, err = readBytes(dec, "callback data")
	return err
}

func (cb Callback) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint32(uint32(len(cb.RemainingAccounts)), bin.LE); err != nil {
		return err
	}
	for _, ra := range cb.RemainingAccounts {
		if err := ra.MarshalWithEncoder(enc); err != nil {
			return err
		}
	}
	return writeBytes(enc, cb.Data)
}

func (ra *AltRemainingAccount) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if ra.TableIndex, err = dec.ReadUint8(); err != nil {
		return errors.Wrap(err, "failed to read table index")
	}
	if ra.AddressIndex, err = dec.ReadUint8(); err != nil {
		return errors.Wrap(err, "failed to read address index")
	}
	ra.IsWritable, err = readBool(dec, "alt remaining account is_writable")
	return err
}

func (ra AltRemainingAccount) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint8(ra.TableIndex); err != nil {
		return err
	}
	if err := enc.WriteUint8(ra.AddressIndex); err != nil {
		return err
	}
	return writeBool(enc, ra.IsWritable)
}

func (cb *CallbackAlt) UnmarshalWithDecoder(dec *bin.Decoder) error {
	n, err := readLength(dec, PubkeyLength, "lookup tables")
	if err != nil {
		return err
	}
	cb.LookupTables = make([]Pubkey, n)
	for i := range cb.LookupTables {
		if err := readPubkey(dec, &cb.LookupTables[i], "lookup table"); err != nil {
			return err
		}
	}
	if n, err = readLength(dec, altRemainingAccountSize, "remaining accounts"); err != nil {
		return err
	}
	cb.RemainingAccounts = make([]AltRemainingAccount, n)
	for i := range cb.RemainingAccounts {
		if err := cb.RemainingAccounts[i].UnmarshalWithDecoder(dec); err != nil {
			return errors.Wrapf(err, "remaining account %d", i)
		}
	}
	cb.Data, err = readBytes(dec, "callback data")
	return err
}

func (cb CallbackAlt) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint32(uint32(len(cb.LookupTables)), bin.LE); err != nil {
		return err
	}
	for _, t := range cb.LookupTables {
		if err := enc.WriteBytes(t[:], false); err != nil {
			return err
		}
	}
	if err := enc.WriteUint32(uint32(len(cb.RemainingAccounts)), bin.LE); err != nil {
		return err
	}
	for _, ra := range cb.RemainingAccounts {
		if err := ra.MarshalWithEncoder(enc); err != nil {
			return err
		}
	}
	return writeBytes(enc, cb.Data)
}
