// Package internal holds small helpers used by engine that have no
// business being part of its public surface.
package internal

// Require returns err when cond is false, nil otherwise. It mirrors the
// teacher contract's require(cond, msg) guard, but returns instead of
// aborting: callers are expected to bail out of the transition immediately
// on a non-nil return, before any state has been mutated.
func Require(cond bool, err error) error {
	if !cond {
		return err
	}
	return nil
}
