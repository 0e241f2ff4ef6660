package ges

import (
	"encoding/json"
	"fmt"
)

// Codec defines how one domain event variant is encoded to and decoded
// from its JSON wire representation. Applications register one Codec per
// EventName in a registry and hand that registry to NewBridge.
type Codec interface {
	Encode(e DomainEvent) (json.RawMessage, error)
	Decode(data json.RawMessage) (DomainEvent, error)
}

// JSONCodec returns a generic Codec for a concrete DomainEvent type T,
// encoding and decoding it as a JSON object.
func JSONCodec[T DomainEvent]() Codec {
	return jsonCodec[T]{}
}

type jsonCodec[T DomainEvent] struct{}

func (jsonCodec[T]) Encode(e DomainEvent) (json.RawMessage, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, SerializationError(err)
	}
	return b, nil
}

func (jsonCodec[T]) Decode(data json.RawMessage) (DomainEvent, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, DeserializationError(err)
	}
	return v, nil
}

// Bridge is the serialization bridge between the aggregate-typed, in-memory
// Envelope and the storage-typed SerializedEnvelope. It is the only shape
// the store layer handles; translation is total and lossless in both
// directions for well-formed input.
//
// Encode/Decode preserve EnvelopeID, AggregateName, AggregateID,
// AggregateSequence, EventName, and EventVersion bit-for-bit; payload
// equality round-trips for events produced by the same schema version.
type Bridge struct {
	registry map[string]Codec
}

// NewBridge builds a Bridge from a registry mapping EventName to the Codec
// that knows how to encode/decode that variant.
func NewBridge(registry map[string]Codec) *Bridge {
	reg := make(map[string]Codec, len(registry))
	for k, v := range registry {
		reg[k] = v
	}
	return &Bridge{registry: reg}
}

// Encode converts an Envelope into its SerializedEnvelope mirror. It fails
// with a SerializationError when the payload's codec cannot encode it, or
// when no codec is registered for the event's name.
func (b *Bridge) Encode(env Envelope) (SerializedEnvelope, error) {
	codec, ok := b.registry[env.EventName]
	if !ok {
		return SerializedEnvelope{}, SerializationError(fmt.Errorf("no codec registered for event %q", env.EventName))
	}
	payload, err := codec.Encode(env.EventPayload)
	if err != nil {
		return SerializedEnvelope{}, err
	}
	meta, err := json.Marshal(env.Metadata)
	if err != nil {
		return SerializedEnvelope{}, SerializationError(err)
	}
	return SerializedEnvelope{
		EnvelopeID:        env.EnvelopeID,
		AggregateName:     env.AggregateName,
		AggregateID:       env.AggregateID,
		AggregateSequence: env.AggregateSequence,
		EventName:         env.EventName,
		EventVersion:      env.EventVersion,
		EventPayload:      payload,
		Metadata:          meta,
	}, nil
}

// Decode converts a SerializedEnvelope back into an Envelope. It fails
// with a DeserializationError when the payload cannot be decoded into any
// known variant — likely version skew or a foreign aggregate's stream.
func (b *Bridge) Decode(se SerializedEnvelope) (Envelope, error) {
	codec, ok := b.registry[se.EventName]
	if !ok {
		return Envelope{}, DeserializationError(fmt.Errorf("no codec registered for event %q", se.EventName))
	}
	payload, err := codec.Decode(se.EventPayload)
	if err != nil {
		return Envelope{}, err
	}
	meta := Metadata{}
	if len(se.Metadata) > 0 {
		if err := json.Unmarshal(se.Metadata, &meta); err != nil {
			return Envelope{}, DeserializationError(err)
		}
	}
	return Envelope{
		EnvelopeID:        se.EnvelopeID,
		AggregateName:     se.AggregateName,
		AggregateID:       se.AggregateID,
		AggregateSequence: se.AggregateSequence,
		EventName:         se.EventName,
		EventVersion:      se.EventVersion,
		EventPayload:      payload,
		Metadata:          meta,
	}, nil
}
