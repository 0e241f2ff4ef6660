package ges_test

import (
	"testing"

	ges "github.com/go-ledger/ges"
)

type registered struct{ ID string }

func (registered) EventName() string    { return "Registered" }
func (registered) EventVersion() string { return "1.0.0" }

type renamed struct{ Name string }

func (renamed) EventName() string    { return "Renamed" }
func (renamed) EventVersion() string { return "1.0.0" }

type user struct {
	ges.Base
	name string
}

func newUser() *user {
	u := &user{}
	u.Init("User", u.apply)
	return u
}

func (u *user) apply(e ges.DomainEvent) {
	switch ev := e.(type) {
	case registered:
		u.SetID(ev.ID)
	case renamed:
		u.name = ev.Name
	}
}

// TestBase_UpdateLifecycle exercises spec scenario S1: update, update, then
// inspect the pending buffer before any store is involved.
func TestBase_UpdateLifecycle(t *testing.T) {
	u := newUser()
	u.Update(registered{ID: "X"})
	u.Update(renamed{Name: "A"})

	pending := u.PendingEvents()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending envelopes, got %d", len(pending))
	}
	if pending[0].AggregateSequence != 1 || pending[1].AggregateSequence != 2 {
		t.Fatalf("expected sequences 1,2 got %d,%d", pending[0].AggregateSequence, pending[1].AggregateSequence)
	}
	if pending[0].EventName != "Registered" || pending[1].EventName != "Renamed" {
		t.Fatalf("expected Registered,Renamed got %s,%s", pending[0].EventName, pending[1].EventName)
	}
	if u.Sequence() != 2 {
		t.Fatalf("expected sequence 2, got %d", u.Sequence())
	}

	drained := u.DrainPendingEvents()
	if len(drained) != 2 {
		t.Fatalf("expected drain to return 2 envelopes, got %d", len(drained))
	}
	if len(u.PendingEvents()) != 0 {
		t.Fatalf("expected pending empty after drain")
	}
}

// TestBase_Load exercises spec scenario S2: replay reconstitutes sequence
// and state from a prior envelope stream.
func TestBase_Load(t *testing.T) {
	source := newUser()
	source.Update(registered{ID: "X"})
	source.Update(renamed{Name: "A"})
	envelopes := source.DrainPendingEvents()

	loaded := newUser()
	loaded.Load(envelopes)

	if loaded.ID() != "X" {
		t.Fatalf("expected id X, got %s", loaded.ID())
	}
	if loaded.Sequence() != 2 {
		t.Fatalf("expected sequence 2, got %d", loaded.Sequence())
	}
	if loaded.name != "A" {
		t.Fatalf("expected name A, got %s", loaded.name)
	}
	if len(loaded.PendingEvents()) != 0 {
		t.Fatalf("expected no pending events after a plain load")
	}
}
