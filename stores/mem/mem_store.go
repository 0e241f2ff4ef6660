// Package mem is an in-memory EventStore implementation. It is
// concurrency-safe and suitable for tests, prototypes, and local runs.
// Events are kept in-process and are lost on restart.
package mem

import (
	"context"
	"sync"

	ges "github.com/go-ledger/ges"
)

// Store is a process-local mapping from (aggregate_name, aggregate_id) to
// an append-only list of SerializedEnvelope, guarded by a readers-writer
// lock. The lock is held only for the duration of the map operation;
// serialization happens before the write lock is acquired, so an encode
// failure never touches the map and never drains the aggregate's pending
// buffer.
type Store struct {
	mu        sync.RWMutex
	streams   map[string][]ges.SerializedEnvelope
	bridge    *ges.Bridge
	extractor ges.MetadataExtractor
}

// Option configures a Store constructed by New.
type Option func(*Store)

// WithMetadataExtractor sets a function that builds Metadata from context.
// When provided, Save merges extracted metadata into each pending envelope
// ahead of the envelope's own explicit metadata, which takes precedence.
func WithMetadataExtractor(ex ges.MetadataExtractor) Option {
	return func(s *Store) { s.extractor = ex }
}

// New creates a new in-memory Store that encodes and decodes events
// through the given Bridge.
func New(bridge *ges.Bridge, opts ...Option) *Store {
	s := &Store{
		streams: make(map[string][]ges.SerializedEnvelope),
		bridge:  bridge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func streamKey(aggregateName, aggregateID string) string {
	return aggregateName + ":" + aggregateID
}

// Save drains an aggregate's pending envelopes, serializes them through the
// store's Bridge, and appends them under a single write-lock acquisition.
// If serialization fails for any envelope, nothing is appended and the
// aggregate's pending buffer is left untouched.
func (s *Store) Save(ctx context.Context, a ges.Aggregate) error {
	pending := a.PendingEvents()
	if len(pending) == 0 {
		return nil
	}

	var extracted ges.Metadata
	if s.extractor != nil {
		extracted = s.extractor(ctx)
	}

	serialized := make([]ges.SerializedEnvelope, 0, len(pending))
	for _, env := range pending {
		if s.extractor != nil {
			env.Metadata = extracted.Merge(env.Metadata)
		}
		se, err := s.bridge.Encode(env)
		if err != nil {
			return err
		}
		serialized = append(serialized, se)
	}

	key := streamKey(a.Name(), a.ID())

	s.mu.Lock()
	s.streams[key] = append(s.streams[key], serialized...)
	s.mu.Unlock()

	a.DrainPendingEvents()
	return nil
}

// FindAllEvents returns the full, ordered envelope sequence for the given
// aggregate. Because appends only ever grow the per-key slice, the stored
// order is already ascending by AggregateSequence. If no events exist, it
// returns a *ges.NotFoundError.
func (s *Store) FindAllEvents(_ context.Context, aggregateName, aggregateID string) ([]ges.Envelope, error) {
	key := streamKey(aggregateName, aggregateID)

	s.mu.RLock()
	snapshot := append([]ges.SerializedEnvelope(nil), s.streams[key]...)
	s.mu.RUnlock()

	if len(snapshot) == 0 {
		return nil, ges.NotFound(aggregateID)
	}

	out := make([]ges.Envelope, 0, len(snapshot))
	for _, se := range snapshot {
		env, err := s.bridge.Decode(se)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	return out, nil
}

var _ ges.EventStore = (*Store)(nil)
