package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact raised by an aggregate mutation.
type Event interface {
	EventID() string
	EventName() string
	AggregateID() string
	OccurredOn() time.Time
}

// Header carries the identity part of an event. Concrete events embed it and add
// the payload fields describing what changed.
type Header struct {
	ID        string    `json:"event_id"`
	Name      string    `json:"event_name"`
	Aggregate string    `json:"aggregate_id"`
	At        time.Time `json:"occurred_on"`
}

func NewHeader(name, aggregateID string, at time.Time) Header {
	return Header{
		ID:        uuid.NewString(),
		Name:      name,
		Aggregate: aggregateID,
		At:        at.UTC(),
	}
}

func (h Header) EventID() string       { return h.ID }
func (h Header) EventName() string     { return h.Name }
func (h Header) AggregateID() string   { return h.Aggregate }
func (h Header) OccurredOn() time.Time { return h.At }

// Envelope is an event received from the broker, payload left encoded.
type Envelope struct {
	Header
	Payload json.RawMessage `json:"payload"`
}

// Encode renders an event as the JSON body used by the outbox and the broker.
func Encode(e Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		Header: Header{
			ID:        e.EventID(),
			Name:      e.EventName(),
			Aggregate: e.AggregateID(),
			At:        e.OccurredOn(),
		},
		Payload: payload,
	})
}

func Decode(body []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(body, &env)
	return env, err
}
