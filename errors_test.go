package ges_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-ledger/ges"
)

func TestErrors_WrapPreservesSentinel(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		name    string
		wrapped error
		sentine error
	}{
		{"serialization", ges.SerializationError(cause), ges.ErrSerialization},
		{"deserialization", ges.DeserializationError(cause), ges.ErrDeserialization},
		{"connection", ges.ConnectionError(cause), ges.ErrConnection},
		{"transaction", ges.TransactionError(cause), ges.ErrTransaction},
		{"execution", ges.ExecutionError(cause), ges.ErrExecution},
		{"unknown", ges.UnknownError(cause), ges.ErrUnknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.wrapped, c.sentine) {
				t.Fatalf("expected errors.Is(%v, %v) to hold", c.wrapped, c.sentine)
			}
			if !errors.Is(c.wrapped, cause) {
				t.Fatalf("expected wrapped error to still satisfy errors.Is with cause")
			}
		})
	}
}

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := ges.NotFound("account-123")

	if !errors.Is(err, ges.ErrNotFound) {
		t.Fatalf("expected errors.Is(err, ges.ErrNotFound) to hold")
	}

	var nf *ges.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected errors.As to extract *NotFoundError")
	}
	if nf.AggregateID != "account-123" {
		t.Fatalf("expected AggregateID to be preserved, got %q", nf.AggregateID)
	}
	if fmt.Sprint(err) == "" {
		t.Fatalf("expected non-empty error message")
	}
}
