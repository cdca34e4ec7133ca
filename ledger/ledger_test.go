package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tibfox/hangman-engine/ledger"
)

func TestFakeLedgerTransferAccumulatesBalance(t *testing.T) {
	fl := ledger.NewFakeLedger(time.Unix(1000, 0))

	require.NoError(t, fl.Transfer("alice", 10))
	require.NoError(t, fl.Transfer("alice", 5))
	require.Equal(t, uint64(15), fl.Balances["alice"])
	require.Len(t, fl.Transfers, 2)
	require.Equal(t, ledger.Transfer{Payee: "alice", Amount: 10}, fl.Transfers[0])
}

func TestFakeLedgerFailTransfers(t *testing.T) {
	fl := ledger.NewFakeLedger(time.Unix(1000, 0))
	fl.FailTransfers = true

	err := fl.Transfer("bob", 10)
	require.Error(t, err)
	require.Equal(t, uint64(0), fl.Balances["bob"])
	require.Empty(t, fl.Transfers)
}

func TestFakeLedgerClockAdvanceAndSetNow(t *testing.T) {
	start := time.Unix(1000, 0)
	fl := ledger.NewFakeLedger(start)
	require.Equal(t, start, fl.Now())

	fl.Advance(30 * time.Second)
	require.Equal(t, start.Add(30*time.Second), fl.Now())

	pinned := time.Unix(5000, 0)
	fl.SetNow(pinned)
	require.Equal(t, pinned, fl.Now())
}

func TestRealLedgerForwardsTransfer(t *testing.T) {
	var gotPayee string
	var gotAmount uint64
	rl := ledger.NewRealLedger(func(payee string, amount uint64) error {
		gotPayee, gotAmount = payee, amount
		return nil
	})

	require.NoError(t, rl.Transfer("carol", 42))
	require.Equal(t, "carol", gotPayee)
	require.Equal(t, uint64(42), gotAmount)
}

func TestRealLedgerPropagatesTransferError(t *testing.T) {
	boom := errors.New("boom")
	rl := ledger.NewRealLedger(func(string, uint64) error { return boom })

	err := rl.Transfer("dave", 1)
	require.ErrorIs(t, err, boom)
}

func TestRealLedgerNowIsWallClock(t *testing.T) {
	rl := ledger.NewRealLedger(func(string, uint64) error { return nil })
	before := time.Now()
	got := rl.Now()
	after := time.Now()
	require.False(t, got.Before(before))
	require.False(t, got.After(after))
}
