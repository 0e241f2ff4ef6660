package ges

import (
	"errors"
	"fmt"
)

// Sentinel errors at the store boundary. Wrap helpers below attach one of
// these via %w so callers can test with errors.Is regardless of which
// backend produced the failure.
var (
	// ErrSerialization is raised when a pending event cannot be encoded.
	// Not recoverable — a programmer error (missing or broken codec).
	ErrSerialization = errors.New("ges: serialization error")

	// ErrDeserialization is raised when a stored payload cannot be decoded
	// into the aggregate's declared event type. Not recoverable without an
	// application-level schema migration — likely version skew or a
	// foreign aggregate's stream.
	ErrDeserialization = errors.New("ges: deserialization error")

	// ErrConnection is raised when the backend's connection pool cannot
	// yield a usable connection. The caller may retry.
	ErrConnection = errors.New("ges: connection error")

	// ErrTransaction is raised when transaction begin, commit, or rollback
	// fails. The caller may retry.
	ErrTransaction = errors.New("ges: transaction error")

	// ErrExecution is raised when a query fails, including a unique-
	// constraint violation on (aggregate_name, aggregate_id,
	// aggregate_sequence). Sequence conflicts require the caller to
	// re-load the aggregate before retrying; other execution failures are
	// caller-specific.
	ErrExecution = errors.New("ges: execution error")

	// ErrNotFound is the sentinel matched by NotFoundError. It is NOT an
	// exceptional condition at the use-case layer: it is the normal signal
	// that an aggregate has not been registered yet.
	ErrNotFound = errors.New("ges: not found")

	// ErrUnknown covers anything unclassified. Treat as fatal.
	ErrUnknown = errors.New("ges: unknown error")
)

// NotFoundError is returned by EventStore.FindAllEvents when it observes
// zero rows for an aggregate. It carries the aggregate id that was looked
// up so callers can report it without re-threading the lookup key.
type NotFoundError struct {
	AggregateID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ges: aggregate %q not found", e.AggregateID)
}

// Is allows errors.Is(err, ErrNotFound) to match this type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound builds the error FindAllEvents must return when an aggregate id
// has no persisted events.
func NotFound(aggregateID string) error {
	return &NotFoundError{AggregateID: aggregateID}
}

// SerializationError wraps err as an ErrSerialization failure.
func SerializationError(err error) error {
	return fmt.Errorf("%w: %w", ErrSerialization, err)
}

// DeserializationError wraps err as an ErrDeserialization failure.
func DeserializationError(err error) error {
	return fmt.Errorf("%w: %w", ErrDeserialization, err)
}

// ConnectionError wraps err as an ErrConnection failure.
func ConnectionError(err error) error {
	return fmt.Errorf("%w: %w", ErrConnection, err)
}

// TransactionError wraps err as an ErrTransaction failure.
func TransactionError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransaction, err)
}

// ExecutionError wraps err as an ErrExecution failure.
func ExecutionError(err error) error {
	return fmt.Errorf("%w: %w", ErrExecution, err)
}

// UnknownError wraps err as an ErrUnknown failure.
func UnknownError(err error) error {
	return fmt.Errorf("%w: %w", ErrUnknown, err)
}
