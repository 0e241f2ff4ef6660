package main

// AccountOpened is emitted when a new account is created.
type AccountOpened struct {
	AccountID string
	Owner     string
	Initial   int64
}

func (AccountOpened) EventName() string    { return "AccountOpened" }
func (AccountOpened) EventVersion() string { return "1.0.0" }

// MoneyDeposited is emitted when funds are deposited to an account.
type MoneyDeposited struct {
	Amount int64
}

func (MoneyDeposited) EventName() string    { return "MoneyDeposited" }
func (MoneyDeposited) EventVersion() string { return "1.0.0" }

// Renamed is emitted when an account's owner changes their registered name.
// It exercises a registration-then-mutation stream shape distinct from the
// deposit flow above: Opened/Deposited vs. Opened/Renamed.
type Renamed struct {
	NewOwner string
}

func (Renamed) EventName() string    { return "Renamed" }
func (Renamed) EventVersion() string { return "1.0.0" }
