package sqlstore

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// Dialect captures the differences between the two supported relational
// backends: parameter placeholder style and how to recognize a unique-index
// violation on the stream's sequence column. Both dialects share the same
// save/find-all-events algorithm in store.go.
type Dialect interface {
	// Name identifies the dialect for error messages and logging.
	Name() string

	// Placeholder returns the bound-parameter marker for the n-th
	// argument (1-based) of a statement, e.g. "$3" or "?".
	Placeholder(n int) string

	// IsDuplicateKey reports whether err is a unique-constraint violation
	// — the signal that a concurrent Save beat this one to the same
	// (aggregate_name, aggregate_id, aggregate_sequence).
	IsDuplicateKey(err error) bool

	// Schema returns the CREATE TABLE statement for the events table in
	// this dialect, including the unique index required by the
	// per-stream no-gap, no-duplicate invariant.
	Schema(table string) string
}

// Postgres returns the PostgreSQL dialect: "$n" placeholders, UUID/JSONB
// columns, and SQLSTATE 23505 as the unique-violation signal.
func Postgres() Dialect { return postgresDialect{} }

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (postgresDialect) IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (postgresDialect) Schema(table string) string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id                  UUID PRIMARY KEY,
	aggregate_name      VARCHAR(255) NOT NULL,
	aggregate_id        UUID NOT NULL,
	aggregate_sequence  BIGINT NOT NULL,
	event_name          VARCHAR(255) NOT NULL,
	event_version       VARCHAR(32) NOT NULL,
	event_payload       JSONB NOT NULL,
	metadata            JSONB NOT NULL,
	UNIQUE (aggregate_name, aggregate_id, aggregate_sequence)
)`, table)
}

// MySQL returns the MySQL/MariaDB dialect: "?" placeholders, identifiers
// stored as VARCHAR(36) UUID text (not BINARY(16)), and error 1062 as the
// unique-violation signal.
func MySQL() Dialect { return mysqlDialect{} }

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) Placeholder(int) string { return "?" }

func (mysqlDialect) IsDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (mysqlDialect) Schema(table string) string {
	// IDs are stored as their canonical 36-character UUID text form rather
	// than BINARY(16): the store binds Go strings for id/aggregate_id, and
	// a text column keeps the two dialects' Go-side argument types
	// identical (see Store.insertArgs).
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id                  VARCHAR(36) PRIMARY KEY,
	aggregate_name      VARCHAR(255) NOT NULL,
	aggregate_id        VARCHAR(36) NOT NULL,
	aggregate_sequence  BIGINT UNSIGNED NOT NULL,
	event_name          VARCHAR(255) NOT NULL,
	event_version       VARCHAR(32) NOT NULL,
	event_payload       JSON NOT NULL,
	metadata            JSON NOT NULL,
	UNIQUE KEY uniq_stream_sequence (aggregate_name, aggregate_id, aggregate_sequence)
)`, table)
}
