// Package sqlstore is the SQL-backed EventStore: a single save/find-all-
// events algorithm shared by the PostgreSQL and MySQL dialects in
// dialect.go. One events table is shared across all aggregate types; its
// unique index on (aggregate_name, aggregate_id, aggregate_sequence)
// enforces the per-stream no-gap, no-duplicate invariant at the database
// level — see dialect.go's Schema for the exact DDL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	ges "github.com/go-ledger/ges"
)

const defaultTable = "events"

// Store is a relational EventStore. Construct one with New, passing an
// already-open *sql.DB (its pool sizing, e.g. a 5-connection cap, is the
// caller's responsibility), the target Dialect, and a Bridge carrying the
// event codec registry.
type Store struct {
	db        *sql.DB
	dialect   Dialect
	bridge    *ges.Bridge
	table     string
	extractor ges.MetadataExtractor
}

// Option configures a Store constructed by New.
type Option func(*Store)

// WithTable overrides the events table name. The core assumes a single
// table per Store; sharding across tables is not supported.
func WithTable(name string) Option {
	return func(s *Store) { s.table = name }
}

// WithMetadataExtractor sets a function that builds Metadata from context.
// When provided, Save merges extracted metadata into each pending envelope
// ahead of the envelope's own explicit metadata, which takes precedence.
func WithMetadataExtractor(ex ges.MetadataExtractor) Option {
	return func(s *Store) { s.extractor = ex }
}

// New builds a Store over an open database handle for the given dialect.
func New(db *sql.DB, dialect Dialect, bridge *ges.Bridge, opts ...Option) *Store {
	s := &Store{
		db:      db,
		dialect: dialect,
		bridge:  bridge,
		table:   defaultTable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schema returns the CREATE TABLE statement for this Store's dialect and
// table name. Callers are responsible for running migrations; the core
// does not apply schema changes itself.
func (s *Store) Schema() string {
	return s.dialect.Schema(s.table)
}

// Save serializes an aggregate's pending envelopes up front — so a
// serialization failure never opens a transaction — then inserts them in
// drain order inside a single transaction and commits. Any INSERT or
// commit error rolls the transaction back; a unique-index violation on
// the sequence column (a concurrent writer winning the race) is reported
// as an ExecutionError, the shape callers test for to decide whether to
// re-load and retry.
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

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return ges.ConnectionError(fmt.Errorf("acquire connection for %s: %w", s.dialect.Name(), err))
	}
	defer func() { _ = conn.Close() }()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return ges.TransactionError(fmt.Errorf("begin: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	stmt := s.insertStatement()
	for _, se := range serialized {
		if _, err := tx.ExecContext(ctx, stmt, s.insertArgs(se)...); err != nil {
			if s.dialect.IsDuplicateKey(err) {
				return ges.ExecutionError(fmt.Errorf(
					"aggregate_sequence conflict for %s/%s at %d: %w",
					se.AggregateName, se.AggregateID, se.AggregateSequence, err,
				))
			}
			return ges.ExecutionError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ges.TransactionError(fmt.Errorf("commit: %w", err))
	}

	a.DrainPendingEvents()
	return nil
}

// FindAllEvents runs a single SELECT of all columns ordered by
// aggregate_sequence ascending, decoding each row through the Bridge. An
// empty result set is reported as a *ges.NotFoundError, never an empty
// success.
func (s *Store) FindAllEvents(ctx context.Context, aggregateName, aggregateID string) ([]ges.Envelope, error) {
	query := fmt.Sprintf(
		`SELECT id, aggregate_name, aggregate_id, aggregate_sequence, event_name, event_version, event_payload, metadata
		 FROM %s
		 WHERE aggregate_name = %s AND aggregate_id = %s
		 ORDER BY aggregate_sequence ASC`,
		s.table, s.dialect.Placeholder(1), s.dialect.Placeholder(2),
	)

	rows, err := s.db.QueryContext(ctx, query, aggregateName, aggregateID)
	if err != nil {
		return nil, ges.ExecutionError(err)
	}
	defer rows.Close()

	var out []ges.Envelope
	for rows.Next() {
		var se ges.SerializedEnvelope
		var payload, metadata []byte
		if err := rows.Scan(
			&se.EnvelopeID, &se.AggregateName, &se.AggregateID, &se.AggregateSequence,
			&se.EventName, &se.EventVersion, &payload, &metadata,
		); err != nil {
			return nil, ges.ExecutionError(err)
		}
		se.EventPayload = payload
		se.Metadata = metadata

		env, err := s.bridge.Decode(se)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	if err := rows.Err(); err != nil {
		return nil, ges.ExecutionError(err)
	}

	if len(out) == 0 {
		return nil, ges.NotFound(aggregateID)
	}
	return out, nil
}

func (s *Store) insertStatement() string {
	return fmt.Sprintf(
		`INSERT INTO %s (id, aggregate_name, aggregate_id, aggregate_sequence, event_name, event_version, event_payload, metadata)
		 VALUES (%s, %s, %s, %s, %s, %s, %s, %s)`,
		s.table,
		s.dialect.Placeholder(1), s.dialect.Placeholder(2), s.dialect.Placeholder(3), s.dialect.Placeholder(4),
		s.dialect.Placeholder(5), s.dialect.Placeholder(6), s.dialect.Placeholder(7), s.dialect.Placeholder(8),
	)
}

func (s *Store) insertArgs(se ges.SerializedEnvelope) []any {
	return []any{
		se.EnvelopeID,
		se.AggregateName,
		se.AggregateID,
		se.AggregateSequence,
		se.EventName,
		se.EventVersion,
		[]byte(se.EventPayload),
		[]byte(se.Metadata),
	}
}

var _ ges.EventStore = (*Store)(nil)
