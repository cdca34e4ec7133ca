package engine

import "strconv"

// itoa/utoa are thin strconv wrappers used when building event attribute
// maps, matching contract/utils.go's UInt64ToString (strconv.FormatUint
// under the hood) rather than hand-rolled digit scanning — that
// hand-rolled path exists only to dodge a WASM/TinyGo size constraint
// this engine doesn't have (see DESIGN.md).
func itoa(n int) string    { return strconv.Itoa(n) }
func utoa(n uint64) string { return strconv.FormatUint(n, 10) }
