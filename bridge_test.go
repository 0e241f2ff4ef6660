package ges_test

import (
	"testing"

	ges "github.com/go-ledger/ges"
)

func TestBridge_EncodeDecodeRoundTrip(t *testing.T) {
	bridge := ges.NewBridge(map[string]ges.Codec{
		"Registered": ges.JSONCodec[registered](),
		"Renamed":    ges.JSONCodec[renamed](),
	})

	env := ges.NewEnvelope("User", "X", 1, registered{ID: "X"}, ges.Metadata{"tenant_id": "t1"})

	se, err := bridge.Encode(env)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := bridge.Decode(se)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.EnvelopeID != env.EnvelopeID {
		t.Fatalf("expected envelope id to round-trip")
	}
	if decoded.AggregateName != env.AggregateName || decoded.AggregateID != env.AggregateID {
		t.Fatalf("expected aggregate identity to round-trip")
	}
	if decoded.AggregateSequence != env.AggregateSequence {
		t.Fatalf("expected sequence to round-trip")
	}
	if decoded.EventName != env.EventName || decoded.EventVersion != env.EventVersion {
		t.Fatalf("expected event name/version to round-trip")
	}
	if decoded.EventPayload != (registered{ID: "X"}) {
		t.Fatalf("expected payload to round-trip, got %#v", decoded.EventPayload)
	}
	if decoded.Metadata["tenant_id"] != "t1" {
		t.Fatalf("expected metadata to round-trip")
	}
}

func TestBridge_EncodeFailsForUnregisteredEvent(t *testing.T) {
	bridge := ges.NewBridge(map[string]ges.Codec{
		"Registered": ges.JSONCodec[registered](),
	})

	env := ges.NewEnvelope("User", "X", 1, renamed{Name: "A"}, nil)

	if _, err := bridge.Encode(env); err == nil {
		t.Fatalf("expected encode to fail for an unregistered event name")
	}
}

func TestBridge_DecodeFailsForUnregisteredEvent(t *testing.T) {
	bridge := ges.NewBridge(map[string]ges.Codec{
		"Registered": ges.JSONCodec[registered](),
	})

	se := ges.SerializedEnvelope{EventName: "Renamed", EventPayload: []byte(`{"Name":"A"}`)}

	if _, err := bridge.Decode(se); err == nil {
		t.Fatalf("expected decode to fail for an unregistered event name")
	}
}
