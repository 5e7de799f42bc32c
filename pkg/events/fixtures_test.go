package events

const (
	ones   = "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"
	twos   = "8qbHbw2BbbTHBW1sbeqakYXVKRQM8Ne7pLK7m6CVfeR"
	threes = "CktRuQ2mttgRGkXJtyksdKHjUdc2C4TgDzyB98oEzy8"

	// base58 of the bytes 0..31
	sequentialSeed = "1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"
	// base58 of 64 0xff bytes
	maxRandomness = "67rpwLCuS5DGA8KGZXKsVQ7dnPb9goRLoKfgGbLfQg9WoLUgNY77E2jT11fem3coV9nAkguBACzrU1iyZM4B8roQ"

	// Withdrawn{Client: ones, Owner: twos, Amount: 1_500_000_000}
	withdrawnBase64 = "FFnfxsJ82w0BAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQICAgICAgICAgICAgICAgICAgICAgICAgICAgICAgICAC9oWQAAAAA="
)

func filled(b byte) Pubkey {
	var p Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

func sequential() Seed {
	var s Seed
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func saturated() Randomness {
	var r Randomness
	for i := range r {
		r[i] = 0xff
	}
	return r
}

// sampleEvents holds one fully populated event per kind, in registry order.
func sampleEvents() []Event {
	return []Event{
		CallbackUpdated{Client: filled(1), Owner: filled(2), Defined: true},
		CalledBack{Program: filled(3)},
		Fulfilled{Seed: sequential(), Client: filled(1), Randomness: saturated()},
		Registered{Client: filled(1), Program: filled(3), State: filled(4), Owner: filled(2)},
		Requested{
			Seed:   sequential(),
			Client: filled(1),
			Callback: &Callback{
				RemainingAccounts: []RemainingAccount{
					{Pubkey: filled(5), IsWritable: true},
					{Pubkey: filled(6), IsWritable: false},
				},
				Data: []byte{0xde, 0xad, 0xbe, 0xef},
			},
			CallbackOverride: true,
		},
		RequestedAlt{
			Seed:   sequential(),
			Client: filled(1),
			Callback: &CallbackAlt{
				LookupTables: []Pubkey{filled(7)},
				RemainingAccounts: []AltRemainingAccount{
					{TableIndex: 0, AddressIndex: 3, IsWritable: true},
				},
				Data: []byte{1, 2, 3},
			},
		},
		Responded{Client: filled(1), Seed: sequential(), Randomness: saturated()},
		Transferred{Client: filled(1), Owner: filled(2), NewOwner: filled(3)},
		Withdrawn{Client: filled(1), Owner: filled(2), Amount: 1_500_000_000},
	}
}
