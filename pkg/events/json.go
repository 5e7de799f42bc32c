package events

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Envelope is the self-describing JSON and YAML form of an event.
type Envelope struct {
	Kind  Kind  `json:"kind" yaml:"kind"`
	Event Event `json:"event" yaml:"event"`
}

// NewEnvelope wraps ev together with its kind.
func NewEnvelope(ev Event) Envelope {
	return Envelope{Kind: ev.Kind(), Event: ev}
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  Kind            `json:"kind"`
		Event json.RawMessage `json:"event"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to unmarshal event envelope")
	}
	r, ok := lookup(raw.Kind)
	if !ok {
		return errors.Wrapf(ErrUnknownEvent, "kind '%s'", raw.Kind)
	}
	ev, err := r.fromJSON(raw.Event)
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", raw.Kind)
	}
	e.Kind = raw.Kind
	e.Event = ev
	return nil
}

// UnmarshalJSONEvent parses an event from its Envelope JSON form.
func UnmarshalJSONEvent(data []byte) (Event, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return e.Event, nil
}
