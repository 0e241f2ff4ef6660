package mem_test

import (
	"context"
	"testing"

	ges "github.com/go-ledger/ges"
	"github.com/go-ledger/ges/internal/storetest"
	"github.com/go-ledger/ges/stores/mem"
)

func TestStore_Compliance(t *testing.T) {
	t.Parallel()
	storetest.Run(t, func(t *testing.T) ges.EventStore {
		t.Helper()
		return mem.New(ges.NewBridge(storetest.Registry()))
	})
}

func TestStore_SaveLeavesPendingIntactOnSerializationFailure(t *testing.T) {
	t.Parallel()

	// A bridge with no codec registered for "Added" makes the second
	// envelope in a pending batch unencodable.
	bridge := ges.NewBridge(map[string]ges.Codec{
		"Opened": ges.JSONCodec[storetest.Opened](),
	})
	store := mem.New(bridge)

	type aggregate struct {
		ges.Base
	}
	a := &aggregate{}
	a.Init("Stream", func(ges.DomainEvent) {})
	a.SetID("agg-serialization-failure")
	a.Update(storetest.Opened{ID: "agg-serialization-failure"})
	a.Update(storetest.Added{N: 1})

	before := a.PendingEvents()
	ctx := context.Background()

	if err := store.Save(ctx, a); err == nil {
		t.Fatalf("expected save to fail due to missing codec")
	}

	after := a.PendingEvents()
	if len(after) != len(before) {
		t.Fatalf("expected pending buffer unchanged after failed save, got %d want %d", len(after), len(before))
	}

	if _, err := store.FindAllEvents(ctx, "Stream", "agg-serialization-failure"); err == nil {
		t.Fatalf("expected no rows to have been written on a failed save")
	}
}

func TestStore_WithMetadataExtractor_ExplicitTakesPrecedence(t *testing.T) {
	t.Parallel()

	extractor := func(context.Context) ges.Metadata {
		return ges.Metadata{"tenant_id": "from-context", "trace_id": "trace-1"}
	}
	store := mem.New(ges.NewBridge(storetest.Registry()), mem.WithMetadataExtractor(extractor))

	type aggregate struct {
		ges.Base
	}
	a := &aggregate{}
	a.Init("Stream", func(ges.DomainEvent) {})
	a.SetID("agg-metadata")
	a.Update(storetest.Opened{ID: "agg-metadata"})
	a.PendingEvents()[0].Metadata["tenant_id"] = "explicit"

	ctx := context.Background()
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	envs, err := store.FindAllEvents(ctx, "Stream", "agg-metadata")
	if err != nil {
		t.Fatalf("find all events failed: %v", err)
	}
	if got := envs[0].Metadata["tenant_id"]; got != "explicit" {
		t.Fatalf("expected explicit metadata to take precedence, got %q", got)
	}
	if got := envs[0].Metadata["trace_id"]; got != "trace-1" {
		t.Fatalf("expected extracted metadata to fill in unset keys, got %q", got)
	}
}
