package ges

// Aggregate is the behavioral contract every event-sourced entity satisfies:
// stable identity, a monotonically increasing sequence, a pending-event
// buffer, an event-application function, and replay.
//
// apply must never fail — domain validation happens before an event is
// emitted (in the aggregate's own command-handling methods), not while
// replaying a stored stream. Update must increase Sequence by exactly 1 and
// append an envelope whose AggregateSequence equals the new sequence. Load
// must be total over any sequence-monotonic envelope list for the
// aggregate's own (aggregate_name, aggregate_id); behavior is undefined if
// envelopes are reordered or belong to a foreign aggregate.
type Aggregate interface {
	// Name is the static logical type name of the aggregate (e.g. "Account").
	Name() string

	// ID is the current aggregate id. It is empty before the first
	// registration event has been applied.
	ID() string

	// Sequence is the last-applied sequence; it must equal the highest
	// AggregateSequence among the events applied so far.
	Sequence() int64

	// SetSequence overrides the last-applied sequence. Used when restoring
	// an aggregate from a source other than a plain envelope replay.
	SetSequence(n int64)

	// PendingEvents returns the buffered, not-yet-persisted envelopes in
	// append order without removing them.
	PendingEvents() []Envelope

	// DrainPendingEvents removes and returns the buffered envelopes in
	// append order. Ownership of the returned envelopes transfers to the
	// caller (normally an EventStore draining them for Save).
	DrainPendingEvents() []Envelope

	// Apply is a pure state transition: given the current state and an
	// event, it produces the next state. It must be total over the
	// aggregate's declared event variants and deterministic.
	Apply(e DomainEvent)

	// Update records a new domain event: it applies the event, increments
	// Sequence by one, and appends a new envelope (carrying the aggregate's
	// identity, the new sequence, the event, and empty metadata) to the
	// pending buffer.
	Update(e DomainEvent)

	// Load replays a stream: starting from the aggregate's current state,
	// it applies every envelope's event in the supplied order and takes
	// Sequence from the last envelope.
	Load(envelopes []Envelope)
}
