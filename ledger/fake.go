package ledger

import (
	"errors"
	"time"
)

// FakeLedger is an in-memory Ledger for tests, grounded directly on
// contract/sdkInterface.go's FakeSDK: an in-memory map standing in for
// chain state (here, balances instead of key/value storage), plus a
// settable clock so deadline tests don't need to sleep.
type FakeLedger struct {
	Balances map[string]uint64
	clock    time.Time

	// FailTransfers, when true, makes every Transfer fail — used to
	// exercise the engine's atomic-rollback behavior under a failed
	// payout.
	FailTransfers bool

	// Transfers records every successful payout, in order, for assertions.
	Transfers []Transfer
}

// Transfer is one recorded payout, kept for test assertions.
type Transfer struct {
	Payee  string
	Amount uint64
}

// NewFakeLedger returns a FakeLedger with its clock set to now.
func NewFakeLedger(now time.Time) *FakeLedger {
	return &FakeLedger{
		Balances: make(map[string]uint64),
		clock:    now,
	}
}

func (f *FakeLedger) Transfer(payee string, amount uint64) error {
	if f.FailTransfers {
		return errors.New("ledger: simulated transfer failure")
	}
	f.Balances[payee] += amount
	f.Transfers = append(f.Transfers, Transfer{Payee: payee, Amount: amount})
	return nil
}

func (f *FakeLedger) Now() time.Time {
	return f.clock
}

// Advance moves the fake clock forward by d, for deadline tests.
func (f *FakeLedger) Advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

// SetNow pins the fake clock to an exact instant.
func (f *FakeLedger) SetNow(t time.Time) {
	f.clock = t
}
