// Package ledger models the engine's payment and clock collaborator:
// monotonic time for deadlines, and custody of bond funds held in two
// accounts (engine escrow, payee). It is grounded directly on
// contract/sdkInterface.go's host abstraction, the SDKInterface /
// RealSDK / FakeSDK trio, trimmed to the two operations the engine's
// escrow and deadline logic actually drive: paying an amount to an
// address, and reading the current time.
package ledger

import "time"

// Ledger is the payment and clock collaborator the engine depends on. The
// engine decides *who* receives funds and *when* a deadline has passed;
// Ledger is responsible for actually moving money and for the wall clock.
type Ledger interface {
	// Transfer moves amount of the ledger's minimal unit to payee. A
	// non-nil error means the payout failed and the caller (the engine)
	// must roll back the whole transition atomically.
	Transfer(payee string, amount uint64) error

	// Now returns the ledger's current monotonic time, used to arm and
	// check RevealDeadline.
	Now() time.Time
}
