package ges

import (
	"context"
)

// EventStore is the persistence contract for event-sourced aggregates. It
// has exactly two operations: Save drains and persists an aggregate's
// pending events; FindAllEvents reads the full, ordered stream back.
//
// Implementations must be safe for concurrent use across multiple tasks:
// stores are shareable handles referencing a shared connection pool or a
// shared lock-guarded map. Aggregates themselves are single-owner and are
// never locked by the core.
//
// Inter-aggregate ordering is unspecified. Intra-aggregate ordering is
// total: persisted order matches drain order within one Save, and across
// saves streams are totally ordered by AggregateSequence — if two Save
// calls race on the same aggregate, at most one succeeds.
type EventStore interface {
	// Save drains an aggregate's pending envelopes, serializes them through
	// a Bridge, and appends them atomically — all or nothing across the
	// envelopes drained in this call. A partial write must never be
	// visible to a concurrent reader.
	//
	// Save is a no-op that returns nil for an aggregate with no pending
	// events. On success, the aggregate's pending buffer is left empty
	// (drained); on any failure, the pending buffer is left exactly as it
	// was before the call (strong exception safety) so the caller may
	// retry or discard.
	Save(ctx context.Context, a Aggregate) error

	// FindAllEvents returns the full, ordered envelope sequence for the
	// given (aggregateName, aggregateID), sorted ascending by
	// AggregateSequence. If no events exist, it returns a *NotFoundError
	// (test with errors.Is(err, ErrNotFound)) — never an empty success.
	FindAllEvents(ctx context.Context, aggregateName, aggregateID string) ([]Envelope, error)
}
