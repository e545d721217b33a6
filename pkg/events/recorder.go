package events

// Source is implemented by every aggregate that buffers events.
type Source interface {
	PendingEvents() []Event
	PullEvents() []Event
	RestoreEvents(evts []Event)
}

// Recorder is the pending-event queue owned by an aggregate value.
// Aggregates hold it as a field; the unit of work is the only caller of
// PullEvents and RestoreEvents.
type Recorder struct {
	pending []Event
}

func (r *Recorder) Record(e Event) {
	r.pending = append(r.pending, e)
}

// PendingEvents returns a copy of the queue.
func (r *Recorder) PendingEvents() []Event {
	out := make([]Event, len(r.pending))
	copy(out, r.pending)
	return out
}

// PullEvents empties the queue and returns what it held.
func (r *Recorder) PullEvents() []Event {
	out := r.pending
	r.pending = nil
	return out
}

// RestoreEvents puts events drained by a failed commit back in front of anything
// recorded since.
func (r *Recorder) RestoreEvents(evts []Event) {
	if len(evts) == 0 {
		return
	}
	restored := make([]Event, 0, len(evts)+len(r.pending))
	restored = append(restored, evts...)
	r.pending = append(restored, r.pending...)
}
