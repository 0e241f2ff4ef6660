package main

import (
	"context"
	"errors"

	ges "github.com/go-ledger/ges"
)

// AccountRepository loads and saves Account aggregates using an EventStore.
type AccountRepository struct {
	store ges.EventStore
}

// NewAccountRepository creates a repository backed by the given store.
func NewAccountRepository(store ges.EventStore) *AccountRepository {
	return &AccountRepository{store: store}
}

// Load fetches and rehydrates an Account by its ID. An id with no persisted
// stream is not an error: it yields a fresh, unopened Account ready to
// receive an OpenAccountCommand.
func (r *AccountRepository) Load(ctx context.Context, id string) (*Account, error) {
	a := NewAccount()

	envelopes, err := r.store.FindAllEvents(ctx, accountAggregateName, id)
	if err != nil {
		var notFound *ges.NotFoundError
		if errors.As(err, &notFound) {
			a.SetID(id)
			return a, nil
		}
		return nil, err
	}

	a.Load(envelopes)
	return a, nil
}

// Save persists the aggregate's pending events.
func (r *AccountRepository) Save(ctx context.Context, a *Account) error {
	return r.store.Save(ctx, a)
}
