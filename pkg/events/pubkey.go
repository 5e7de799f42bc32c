package events

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	PubkeyLength     = 32
	SeedLength       = 32
	RandomnessLength = 64
)

// Pubkey is an opaque on-chain address. Its text form is base58.
type Pubkey [PubkeyLength]byte

// Seed is the client-provided request seed.
type Seed [SeedLength]byte

// Randomness is the fulfilled 64-byte randomness value.
type Randomness [RandomnessLength]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pubkey) UnmarshalText(text []byte) error {
	return decodeFixedBase58(p[:], string(text), "pubkey")
}

// PubkeyFromBase58 parses a base58 encoded address.
func PubkeyFromBase58(s string) (Pubkey, error) {
	var p Pubkey
	err := p.UnmarshalText([]byte(s))
	return p, err
}

// MustPubkeyFromBase58 is PubkeyFromBase58 that panics on malformed input.
func MustPubkeyFromBase58(s string) Pubkey {
	p, err := PubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (s Seed) String() string {
	return base58.Encode(s[:])
}

func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Seed) UnmarshalText(text []byte) error {
	return decodeFixedBase58(s[:], string(text), "seed")
}

func (r Randomness) String() string {
	return base58.Encode(r[:])
}

func (r Randomness) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Randomness) UnmarshalText(text []byte) error {
	return decodeFixedBase58(r[:], string(text), "randomness")
}

func decodeFixedBase58(dst []byte, s string, what string) error {
	raw, err := base58.Decode(s)
	if err != nil {
		return errors.Wrapf(err, "invalid %s '%s'", what, s)
	}
	if len(raw) != len(dst) {
		return errors.Errorf("invalid %s '%s': expected %d bytes, got %d", what, s, len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}
