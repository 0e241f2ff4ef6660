package ges

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Envelope is the per-event persisted unit: an immutable record wrapping
// one domain event with its identity, its position in the aggregate's
// stream, and free-form metadata.
//
// For a fixed (AggregateName, AggregateID), the multiset of AggregateSequence
// values persisted is a contiguous prefix of the positive integers — no
// gaps, no duplicates. EnvelopeID is unique across the entire store.
type Envelope struct {
	EnvelopeID        string
	AggregateName     string
	AggregateID       string
	AggregateSequence int64
	EventName         string
	EventVersion      string
	EventPayload      DomainEvent
	Metadata          Metadata
}

// NewEnvelope wraps a domain event for a given aggregate stream position.
// It assigns a fresh EnvelopeID and captures EventName/EventVersion from
// the event at construction time — a captured copy, not a live reference.
func NewEnvelope(aggregateName, aggregateID string, sequence int64, event DomainEvent, metadata Metadata) Envelope {
	if metadata == nil {
		metadata = Metadata{}
	}
	return Envelope{
		EnvelopeID:        uuid.NewString(),
		AggregateName:     aggregateName,
		AggregateID:       aggregateID,
		AggregateSequence: sequence,
		EventName:         event.EventName(),
		EventVersion:      event.EventVersion(),
		EventPayload:      event,
		Metadata:          metadata,
	}
}

// SerializedEnvelope is the storage-shaped mirror of Envelope: EventPayload
// and Metadata are encoded as JSON value trees, all other fields stay
// scalar. This is the only shape the store layer handles; the Bridge
// translates to and from it, totally and losslessly for well-formed input.
type SerializedEnvelope struct {
	EnvelopeID        string
	AggregateName     string
	AggregateID       string
	AggregateSequence int64
	EventName         string
	EventVersion      string
	EventPayload      json.RawMessage
	Metadata          json.RawMessage
}
