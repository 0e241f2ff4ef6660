package main

import (
	"context"

	ges "github.com/go-ledger/ges"
)

// AccountService orchestrates command handling using repository + store.
type AccountService struct {
	repo *AccountRepository
}

// NewAccountService wires a repository backed by the given store.
func NewAccountService(store ges.EventStore) *AccountService {
	return &AccountService{repo: NewAccountRepository(store)}
}

// Handle executes a command end-to-end: load → Handle → save.
func (s *AccountService) Handle(ctx context.Context, cmd any) error {
	id := extractAccountID(cmd)
	acc, err := s.repo.Load(ctx, id)
	if err != nil {
		return err
	}

	if err := acc.Handle(cmd); err != nil {
		return err
	}

	return s.repo.Save(ctx, acc)
}

// extractAccountID is a tiny helper for this sample.
// In a real app, consider a command interface exposing AggregateID().
func extractAccountID(cmd any) string {
	switch c := cmd.(type) {
	case OpenAccountCommand:
		return c.AccountID
	case DepositCommand:
		return c.AccountID
	case RenameCommand:
		return c.AccountID
	default:
		return ""
	}
}
