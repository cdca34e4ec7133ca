package ledger

import "time"

// TransferFunc performs one real-world payout, e.g. a Hive/Hive-Engine
// transfer the way contract/sdkInterface.go's RealSDK.HiveTransfer
// forwards straight to the host SDK.
type TransferFunc func(payee string, amount uint64) error

// RealLedger forwards Transfer to a host-supplied function and reports
// wall-clock time. It is the direct analogue of contract/sdkInterface.go's
// RealSDK: a thin shim with no logic of its own, so the engine never talks
// to the real payment rail directly.
type RealLedger struct {
	transfer TransferFunc
}

// NewRealLedger wires a RealLedger to the host's transfer implementation.
func NewRealLedger(transfer TransferFunc) *RealLedger {
	return &RealLedger{transfer: transfer}
}

func (r *RealLedger) Transfer(payee string, amount uint64) error {
	return r.transfer(payee, amount)
}

func (r *RealLedger) Now() time.Time {
	return time.Now()
}
