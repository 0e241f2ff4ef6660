// Package storetest exercises the EventStore contract against any backend.
// It is deliberately backend-agnostic: register it once per implementation
// (in-memory, SQL) and every subtest runs unmodified.
package storetest

import (
	"context"
	"errors"
	"testing"

	ges "github.com/go-ledger/ges"
)

const aggregateName = "Stream"

// Opened is a minimal domain event used only by this suite.
type Opened struct{ ID string }

func (Opened) EventName() string    { return "Opened" }
func (Opened) EventVersion() string { return "1.0.0" }

// Added is a second minimal domain event used only by this suite.
type Added struct{ N int }

func (Added) EventName() string    { return "Added" }
func (Added) EventVersion() string { return "1.0.0" }

// Registry provides the minimal codec registry used for tests. It avoids
// any dependency on domain-specific event definitions.
func Registry() map[string]ges.Codec {
	return map[string]ges.Codec{
		"Opened": ges.JSONCodec[Opened](),
		"Added":  ges.JSONCodec[Added](),
	}
}

// testAggregate is a throwaway aggregate whose state is irrelevant; only
// its envelope bookkeeping (via ges.Base) matters to these tests.
type testAggregate struct {
	ges.Base
	opens int
	adds  int
}

func newTestAggregate(id string) *testAggregate {
	a := &testAggregate{}
	a.Init(aggregateName, a.apply)
	a.SetID(id)
	return a
}

func (a *testAggregate) apply(e ges.DomainEvent) {
	switch e.(type) {
	case Opened:
		a.opens++
	case Added:
		a.adds++
	}
}

// Factory creates a new, empty EventStore instance for testing. Each test
// should receive a fresh, isolated instance; use t.Cleanup for teardown.
type Factory func(t *testing.T) ges.EventStore

// Run executes a suite of compliance tests verifying that an EventStore
// implementation adheres to the contract in store.go. Each subtest runs in
// parallel, so implementations must be concurrency-safe.
func Run(t *testing.T, newStore Factory) {
	t.Run("save_then_find_all_events_round_trips_in_order", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s := newStore(t)

		a := newTestAggregate("00000000-0000-0000-0000-000000000001")
		a.Update(Opened{ID: "00000000-0000-0000-0000-000000000001"})
		a.Update(Added{N: 5})

		if err := s.Save(ctx, a); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if pending := a.PendingEvents(); len(pending) != 0 {
			t.Fatalf("expected empty pending after save, got %d", len(pending))
		}

		envs, err := s.FindAllEvents(ctx, aggregateName, "00000000-0000-0000-0000-000000000001")
		if err != nil {
			t.Fatalf("find all events failed: %v", err)
		}
		if len(envs) != 2 {
			t.Fatalf("expected 2 events, got %d", len(envs))
		}
		if envs[0].AggregateSequence != 1 || envs[1].AggregateSequence != 2 {
			t.Fatalf("expected sequences 1,2 got %d,%d", envs[0].AggregateSequence, envs[1].AggregateSequence)
		}
		if envs[0].EventName != "Opened" || envs[1].EventName != "Added" {
			t.Fatalf("expected Opened,Added got %s,%s", envs[0].EventName, envs[1].EventName)
		}
	})

	t.Run("save_with_no_pending_is_a_successful_noop", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s := newStore(t)

		a := newTestAggregate("agg-empty")
		if err := s.Save(ctx, a); err != nil {
			t.Fatalf("expected no-op save to succeed, got %v", err)
		}
	})

	t.Run("find_all_events_on_unknown_id_returns_not_found", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s := newStore(t)

		_, err := s.FindAllEvents(ctx, aggregateName, "ffffffff-ffff-ffff-ffff-ffffffffffff")
		if !errors.Is(err, ges.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("replay_reconstitutes_sequence_and_state", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s := newStore(t)

		a := newTestAggregate("00000000-0000-0000-0000-000000000002")
		a.Update(Opened{ID: "00000000-0000-0000-0000-000000000002"})
		a.Update(Added{N: 1})
		a.Update(Added{N: 2})
		if err := s.Save(ctx, a); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		envs, err := s.FindAllEvents(ctx, aggregateName, "00000000-0000-0000-0000-000000000002")
		if err != nil {
			t.Fatalf("find all events failed: %v", err)
		}

		replayed := newTestAggregate("")
		replayed.Load(envs)
		if replayed.Sequence() != 3 {
			t.Fatalf("expected sequence 3 after replay, got %d", replayed.Sequence())
		}
		if replayed.opens != 1 || replayed.adds != 2 {
			t.Fatalf("expected state opens=1 adds=2, got opens=%d adds=%d", replayed.opens, replayed.adds)
		}
	})

	t.Run("multi_event_save_preserves_update_order", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		s := newStore(t)

		a := newTestAggregate("00000000-0000-0000-0000-000000000003")
		a.Update(Opened{ID: "00000000-0000-0000-0000-000000000003"})
		for i := 0; i < 4; i++ {
			a.Update(Added{N: i})
		}
		if err := s.Save(ctx, a); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		envs, err := s.FindAllEvents(ctx, aggregateName, "00000000-0000-0000-0000-000000000003")
		if err != nil {
			t.Fatalf("find all events failed: %v", err)
		}
		if len(envs) != 5 {
			t.Fatalf("expected 5 events, got %d", len(envs))
		}
		for i, env := range envs {
			if env.AggregateSequence != int64(i+1) {
				t.Fatalf("expected contiguous sequence at index %d, got %d", i, env.AggregateSequence)
			}
		}
	})
}
