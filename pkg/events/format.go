package events

import (
	"fmt"
	"strconv"
)

// LamportsPerSol is the number of lamports in one SOL.
const LamportsPerSol uint64 = 1_000_000_000

// Format renders an event as its one line summary.
func Format(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.String()
}

// LamportsToSol renders a lamport amount in whole SOL using the shortest
// decimal form, e.g. 1500000000 -> "1.5".
func LamportsToSol(lamports uint64) string {
	return strconv.FormatFloat(float64(lamports)/float64(LamportsPerSol), 'f', -1, 64)
}

func (e CallbackUpdated) String() string {
	action := "unset"
	if e.Defined {
		action = "set"
	}
	return fmt.Sprintf("CallbackUpdated: %s for %s by %s", action, e.Client, e.Owner)
}

func (e CalledBack) String() string {
	return fmt.Sprintf("CalledBack: %s", e.Program)
}

func (e Fulfilled) String() string {
	return fmt.Sprintf("Fulfilled: %s for %s with %s", e.Seed, e.Client, e.Randomness)
}

func (e Registered) String() string {
	return fmt.Sprintf("Registered: %s as %s with %s by %s", e.Client, e.Program, e.State, e.Owner)
}

func (e Requested) String() string {
	with := "without"
	if e.Callback != nil {
		if e.CallbackOverride {
			with = "with request-level"
		} else {
			with = "with client-level"
		}
	}
	return fmt.Sprintf("Requested: %s by %s %s callback", e.Seed, e.Client, with)
}

func (e RequestedAlt) String() string {
	with := "without"
	if e.Callback != nil {
		with = "with request-level"
	}
	return fmt.Sprintf("Requested (ALT): %s by %s %s callback", e.Seed, e.Client, with)
}

// The client is printed in both positions; that is how the program's own
// tooling renders this event.
func (e Responded) String() string {
	return fmt.Sprintf("Responded: %s to %s of %s with %s", e.Client, e.Seed, e.Client, e.Randomness)
}

func (e Transferred) String() string {
	return fmt.Sprintf("Transferred: %s from %s to %s", e.Client, e.Owner, e.NewOwner)
}

func (e Withdrawn) String() string {
	return fmt.Sprintf("Withdrawn: %s SOL from %s by %s", LamportsToSol(e.Amount), e.Client, e.Owner)
}
