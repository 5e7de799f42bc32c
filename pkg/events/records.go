package events

import (
	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// CallbackUpdated is emitted when a client-level callback is set or cleared.
type CallbackUpdated struct {
	Client  Pubkey `json:"client" yaml:"client"`
	Owner   Pubkey `json:"owner" yaml:"owner"`
	Defined bool   `json:"defined" yaml:"defined"`
}

// CalledBack is emitted after a client program has been called back.
type CalledBack struct {
	Program Pubkey `json:"program" yaml:"program"`
}

// Fulfilled is emitted once a randomness request has been fulfilled.
type Fulfilled struct {
	Seed       Seed       `json:"seed" yaml:"seed"`
	Client     Pubkey     `json:"client" yaml:"client"`
	Randomness Randomness `json:"randomness" yaml:"randomness"`
}

// Registered is emitted when a client program registers with the VRF program.
type Registered struct {
	Client  Pubkey `json:"client" yaml:"client"`
	Program Pubkey `json:"program" yaml:"program"`
	State   Pubkey `json:"state" yaml:"state"`
	Owner   Pubkey `json:"owner" yaml:"owner"`
}

// Requested is emitted on a randomness request. CallbackOverride reports
// whether Callback came with the request rather than from the client.
type Requested struct {
	Seed             Seed      `json:"seed" yaml:"seed"`
	Client           Pubkey    `json:"client" yaml:"client"`
	Callback         *Callback `json:"callback,omitempty" yaml:"callback,omitempty"`
	CallbackOverride bool      `json:"callbackOverride" yaml:"callbackOverride"`
}

// RequestedAlt is emitted on a randomness request that uses address lookup tables.
type RequestedAlt struct {
	Seed     Seed         `json:"seed" yaml:"seed"`
	Client   Pubkey       `json:"client" yaml:"client"`
	Callback *CallbackAlt `json:"callback,omitempty" yaml:"callback,omitempty"`
}

// Responded is emitted when a fulfillment authority submits its response.
type Responded struct {
	Client     Pubkey     `json:"client" yaml:"client"`
	Seed       Seed       `json:"seed" yaml:"seed"`
	Randomness Randomness `json:"randomness" yaml:"randomness"`
}

// Transferred is emitted on client ownership transfer.
type Transferred struct {
	Client   Pubkey `json:"client" yaml:"client"`
	Owner    Pubkey `json:"owner" yaml:"owner"`
	NewOwner Pubkey `json:"newOwner" yaml:"newOwner"`
}

// Withdrawn is emitted when an owner withdraws lamports from a client.
type Withdrawn struct {
	Client Pubkey `json:"client" yaml:"client"`
	Owner  Pubkey `json:"owner" yaml:"owner"`
	Amount uint64 `json:"amount" yaml:"amount"`
}

func (e CallbackUpdated) Kind() Kind { return KindCallbackUpdated }
func (e CalledBack) Kind() Kind      { return KindCalledBack }
func (e Fulfilled) Kind() Kind       { return KindFulfilled }
func (e Registered) Kind() Kind      { return KindRegistered }
func (e Requested) Kind() Kind       { return KindRequested }
func (e RequestedAlt) Kind() Kind    { return KindRequestedAlt }
func (e Responded) Kind() Kind       { return KindResponded }
func (e Transferred) Kind() Kind     { return KindTransferred }
func (e Withdrawn) Kind() Kind       { return KindWithdrawn }

func (CallbackUpdated) isEvent() {}
func (CalledBack) isEvent()      {}
func (Fulfilled) isEvent()       {}
func (Registered) isEvent()      {}
func (Requested) isEvent()       {}
func (RequestedAlt) isEvent()    {}
func (Responded) isEvent()       {}
func (Transferred) isEvent()     {}
func (Withdrawn) isEvent()       {}

func (e *CallbackUpdated) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if err = readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	if err = readPubkey(dec, &e.Owner, "owner"); err != nil {
		return err
	}
	e.Defined, err = readBool(dec, "defined")
	return err
}

func (e CallbackUpdated) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writePubkeys(enc, e.Client, e.Owner); err != nil {
		return err
	}
	return writeBool(enc, e.Defined)
}

func (e *CalledBack) UnmarshalWithDecoder(dec *bin.Decoder) error {
	return readPubkey(dec, &e.Program, "program")
}

func (e CalledBack) MarshalWithEncoder(enc *bin.Encoder) error {
	return writePubkeys(enc, e.Program)
}

func (e *Fulfilled) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := readFixed(dec, e.Seed[:], "seed"); err != nil {
		return err
	}
	if err := readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	return readFixed(dec, e.Randomness[:], "randomness")
}

func (e Fulfilled) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteBytes(e.Seed[:], false); err != nil {
		return err
	}
	if err := writePubkeys(enc, e.Client); err != nil {
		return err
	}
	return enc.WriteBytes(e.Randomness[:], false)
}

func (e *Registered) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	if err := readPubkey(dec, &e.Program, "program"); err != nil {
		return err
	}
	if err := readPubkey(dec, &e.State, "state"); err != nil {
		return err
	}
	return readPubkey(dec, &e.Owner, "owner")
}

func (e Registered) MarshalWithEncoder(enc *bin.Encoder) error {
	return writePubkeys(enc, e.Client, e.Program, e.State, e.Owner)
}

func (e *Requested) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if err = readFixed(dec, e.Seed[:], "seed"); err != nil {
		return err
	}
	if err = readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	present, err := readOption(dec, "callback")
	if err != nil {
		return err
	}
	if present {
		e.Callback = new(Callback)
		if err = e.Callback.UnmarshalWithDecoder(dec); err != nil {
			return errors.Wrap(err, "callback")
		}
	}
	e.CallbackOverride, err = readBool(dec, "callback_override")
	return err
}

func (e Requested) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteBytes(e.Seed[:], false); err != nil {
		return err
	}
	if err := writePubkeys(enc, e.Client); err != nil {
		return err
	}
	if err := writeBool(enc, e.Callback != nil); err != nil {
		return err
	}
	if e.Callback != nil {
		if err := e.Callback.MarshalWithEncoder(enc); err != nil {
			return err
		}
	}
	return writeBool(enc, e.CallbackOverride)
}

func (e *RequestedAlt) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := readFixed(dec, e.Seed[:], "seed"); err != nil {
		return err
	}
	if err := readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	present, err := readOption(dec, "callback")
	if err != nil {
		return err
	}
	if present {
		e.Callback = new(CallbackAlt)
		if err := e.Callback.UnmarshalWithDecoder(dec); err != nil {
			return errors.Wrap(err, "callback")
		}
	}
	return nil
}

func (e RequestedAlt) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteBytes(e.Seed[:], false); err != nil {
		return err
	}
	if err := writePubkeys(enc, e.Client); err != nil {
		return err
	}
	if err := writeBool(enc, e.Callback != nil); err != nil {
		return err
	}
	if e.Callback == nil {
		return nil
	}
	return e.Callback.MarshalWithEncoder(enc)
}

func (e *Responded) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	if err := readFixed(dec, e.Seed[:], "seed"); err != nil {
		return err
	}
	return readFixed(dec, e.Randomness[:], "randomness")
}

func (e Responded) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writePubkeys(enc, e.Client); err != nil {
		return err
	}
	if err := enc.WriteBytes(e.Seed[:], false); err != nil {
		return err
	}
	return enc.WriteBytes(e.Randomness[:], false)
}

func (e *Transferred) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	if err := readPubkey(dec, &e.Owner, "owner"); err != nil {
		return err
	}
	return readPubkey(dec, &e.NewOwner, "new_owner")
}

func (e Transferred) MarshalWithEncoder(enc *bin.Encoder) error {
	return writePubkeys(enc, e.Client, e.Owner, e.NewOwner)
}

func (e *Withdrawn) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if err = readPubkey(dec, &e.Client, "client"); err != nil {
		return err
	}
	if err = readPubkey(dec, &e.Owner, "owner"); err != nil {
		return err
	}
	if e.Amount, err = dec.ReadUint64(bin.LE); err != nil {
		return errors.Wrap(err, "failed to read amount")
	}
	return nil
}

func (e Withdrawn) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writePubkeys(enc, e.Client, e.Owner); err != nil {
		return err
	}
	return enc.WriteUint64(e.Amount, bin.LE)
}

func writePubkeys(enc *bin.Encoder, keys ...Pubkey) error {
	for _, k := range keys {
		if err := enc.WriteBytes(k[:], false); err != nil {
			return err
		}
	}
	return nil
}
