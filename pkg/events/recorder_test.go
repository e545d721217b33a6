package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type thingHappened struct {
	Header
	Value int `json:"value"`
}

func newThing(id string, v int) thingHappened {
	return thingHappened{Header: NewHeader("thing.happened", id, time.Now()), Value: v}
}

func TestRecorder_PullEmptiesQueue(t *testing.T) {
	var r Recorder
	r.Record(newThing("a", 1))
	r.Record(newThing("a", 2))

	pulled := r.PullEvents()

	assert.Len(t, pulled, 2)
	assert.Empty(t, r.PendingEvents())
}

func TestRecorder_PendingEventsIsACopy(t *testing.T) {
	var r Recorder
	r.Record(newThing("a", 1))

	snapshot := r.PendingEvents()
	snapshot[0] = newThing("b", 9)

	assert.Equal(t, "a", r.PendingEvents()[0].AggregateID())
}

func TestRecorder_RestoreKeepsOrder(t *testing.T) {
	var r Recorder
	r.Record(newThing("a", 1))
	drained := r.PullEvents()
	r.Record(newThing("a", 2))

	r.RestoreEvents(drained)

	pending := r.PendingEvents()
	assert.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].(thingHappened).Value)
	assert.Equal(t, 2, pending[1].(thingHappened).Value)
}

func TestEncodeDecode(t *testing.T) {
	evt := newThing("agg-1", 7)

	body, err := Encode(evt)
	assert.NoError(t, err)

	env, err := Decode(body)
	assert.NoError(t, err)
	assert.Equal(t, evt.EventID(), env.EventID())
	assert.Equal(t, "thing.happened", env.EventName())
	assert.Equal(t, "agg-1", env.AggregateID())
	assert.JSONEq(t, `7`, string(extract(t, env.Payload, "value")))
}
