package ges

// Base is an embeddable helper that implements the mechanical half of the
// Aggregate contract, leaving only the domain-specific applier to the
// embedding type. Semantics:
//   - Init(name, applier): set the aggregate's logical type name and the
//     function that mutates state for one event.
//   - Apply(e): mutate state via the applier. Does NOT touch Sequence or
//     pending — callers use it directly only when rebuilding state outside
//     of Update/Load (Update and Load call it themselves).
//   - Update(e): Apply(e), bump Sequence by one, enqueue a fresh Envelope
//     carrying the new Sequence.
//   - Load(envelopes): Apply every event in order, then set Sequence from
//     the last envelope.
//   - DrainPendingEvents(): return pending and clear it.
type Base struct {
	name     string
	id       string
	sequence int64
	pending  []Envelope
	applier  func(DomainEvent)
}

// Init sets the aggregate's logical type name and the state-mutation
// function (applier). Call this from the embedding type's constructor,
// passing its own Apply-like method as the applier.
func (b *Base) Init(name string, applier func(DomainEvent)) {
	b.name = name
	b.applier = applier
}

// Name returns the aggregate's logical type name, as set by Init.
func (b *Base) Name() string { return b.name }

// ID returns the current aggregate id. Empty before the first registration
// event has been applied.
func (b *Base) ID() string { return b.id }

// SetID overrides the aggregate id. Embedding types call this from their
// applier when processing the event that establishes identity.
func (b *Base) SetID(id string) { b.id = id }

// Sequence returns the last-applied sequence.
func (b *Base) Sequence() int64 { return b.sequence }

// SetSequence overrides the last-applied sequence.
func (b *Base) SetSequence(n int64) { b.sequence = n }

// PendingEvents returns the buffered, not-yet-persisted envelopes in append
// order, in a new slice. The envelopes' Metadata maps are not copied: they
// are shared with the pending buffer.
func (b *Base) PendingEvents() []Envelope {
	out := make([]Envelope, len(b.pending))
	copy(out, b.pending)
	return out
}

// DrainPendingEvents removes and returns the buffered envelopes in append
// order, transferring their ownership to the caller.
func (b *Base) DrainPendingEvents() []Envelope {
	out := b.pending
	b.pending = nil
	return out
}

// Apply mutates state by a single event via the applier set in Init. It
// does not advance Sequence or touch the pending buffer; Update and Load
// are responsible for that bookkeeping.
func (b *Base) Apply(e DomainEvent) {
	if b.applier != nil {
		b.applier(e)
	}
}

// Update records a new domain event: Apply(e), advance Sequence by one,
// and enqueue a new Envelope (carrying the aggregate's identity, the new
// Sequence, the event, and empty metadata) into the pending buffer.
func (b *Base) Update(e DomainEvent) {
	b.Apply(e)
	b.sequence++
	b.pending = append(b.pending, NewEnvelope(b.name, b.id, b.sequence, e, nil))
}

// Load replays a stream: starting from the current state, it applies every
// envelope's event in the supplied order, then takes Sequence from the
// last envelope.
func (b *Base) Load(envelopes []Envelope) {
	for _, env := range envelopes {
		b.Apply(env.EventPayload)
	}
	if n := len(envelopes); n > 0 {
		b.sequence = envelopes[n-1].AggregateSequence
	}
}
