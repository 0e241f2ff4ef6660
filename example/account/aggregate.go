package main

import (
	"fmt"

	ges "github.com/go-ledger/ges"
)

const accountAggregateName = "Account"

// Account is the aggregate root that enforces domain rules and emits events.
type Account struct {
	ges.Base

	owner   string
	balance int64
	opened  bool
}

// NewAccount builds an empty Account ready for command handling or replay.
func NewAccount() *Account {
	a := &Account{}
	a.Init(accountAggregateName, a.apply)
	return a
}

func (a *Account) Balance() int64 { return a.balance }
func (a *Account) Owner() string  { return a.owner }

// Handle routes a command to domain logic and records resulting events.
func (a *Account) Handle(cmd any) error {
	switch c := cmd.(type) {
	case OpenAccountCommand:
		if a.opened {
			return fmt.Errorf("account already opened")
		}
		if c.AccountID == "" {
			return fmt.Errorf("empty account id")
		}
		if c.Initial < 0 {
			return fmt.Errorf("initial balance cannot be negative")
		}
		a.Update(AccountOpened{AccountID: c.AccountID, Owner: c.Owner, Initial: c.Initial})
		return nil

	case DepositCommand:
		if !a.opened {
			return fmt.Errorf("account not opened")
		}
		if c.Amount <= 0 {
			return fmt.Errorf("invalid deposit amount")
		}
		a.Update(MoneyDeposited{Amount: c.Amount})
		return nil

	case RenameCommand:
		if !a.opened {
			return fmt.Errorf("account not opened")
		}
		if c.NewOwner == "" {
			return fmt.Errorf("empty owner name")
		}
		a.Update(Renamed{NewOwner: c.NewOwner})
		return nil
	}

	return fmt.Errorf("unknown command type %T", cmd)
}

// apply is the aggregate's state-transition function, passed to ges.Base.Init.
func (a *Account) apply(e ges.DomainEvent) {
	switch ev := e.(type) {
	case AccountOpened:
		a.SetID(ev.AccountID)
		a.owner = ev.Owner
		a.balance = ev.Initial
		a.opened = true
	case MoneyDeposited:
		a.balance += ev.Amount
	case Renamed:
		a.owner = ev.NewOwner
	}
}

var _ ges.Aggregate = (*Account)(nil)
