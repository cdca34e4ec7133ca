package engine

import "errors"

//
// Reveal and ClaimForfeit — the consistency verifier and the
// deadline-based forfeit path.
//
// Grounded on contract/g_move.go's win/consistency scanning
// (finalizeIfWinOrDraw, checkPatternGrid) generalized from board-adjacency
// scanning to a per-letter scan over the revealed word, and on
// contract/g_timeout.go's finishGameTimeoutCommon for the payout-then-emit
// shape of a forced game end.
//

// ErrPayoutFailed reports a ledger.Transfer failure. Any payout failure
// fails the whole transition atomically: the caller sees this error and
// the Game record is left exactly as it was before the call.
var ErrPayoutFailed = errors.New("engine: ledger payout failed")

// Reveal opens the referee's commitment and verifies every answer given
// during play was consistent with the revealed word.
func (e *Engine) Reveal(caller, player, word string, salt [32]byte) (*Game, error) {
	if caller != e.cfg.Referee {
		return nil, ErrNotReferee
	}
	g := e.store.get(player)
	if g == nil || (g.Status != Won && g.Status != Lost) || g.Revealed || g.Commitment == ([32]byte{}) || g.Bond == 0 {
		return nil, ErrBadState
	}

	if len(word) != g.Length {
		return nil, ErrLengthMismatch
	}

	if got := Commit(player, salt, word); got != g.Commitment {
		return e.slashAndFail(g, ErrCommitMismatch)
	}

	expected, err := expectedPositions(word)
	if err != nil {
		return nil, err
	}

	for l := Letter(0); l < numLetters; l++ {
		if g.WrongMask.has(l) && expected[l] != 0 {
			return e.slashAndFail(g, ErrWrongLetterPresent)
		}
		if g.CorrectMask.has(l) && expected[l] != g.PositionsByLetter[l] {
			return e.slashAndFail(g, ErrPositionsMismatch)
		}
	}

	// Defensive: unreachable if the per-letter scan above already holds,
	// since every revealed visible-mask cell came from a
	// PositionsByLetter entry that scan just verified against word.
	for i := 0; i < g.Length; i++ {
		if c := g.VisibleMask[i]; c != HoleRune && c != word[i] {
			return e.slashAndFail(g, ErrMaskMismatch)
		}
	}

	if err := e.ledger.Transfer(e.cfg.Referee, g.Bond); err != nil {
		return nil, ErrPayoutFailed
	}
	g.Bond = 0
	g.Revealed = true
	e.emitWordRevealed(player, word, salt)
	return g.clone(), nil
}

// expectedPositions derives, for every letter of the alphabet, the bitmask
// of positions it occupies in word.
func expectedPositions(word string) ([numLetters]PositionsMask, error) {
	var expected [numLetters]PositionsMask
	for i := 0; i < len(word); i++ {
		l, err := Normalize(word[i])
		if err != nil {
			return expected, err
		}
		expected[l] |= 1 << uint(i)
	}
	return expected, nil
}

// slashAndFail routes the bond to the player and returns cause once the
// payout has gone through. If the payout itself fails, the whole
// transition rolls back and ErrPayoutFailed is returned instead of cause.
func (e *Engine) slashAndFail(g *Game, cause error) (*Game, error) {
	if err := e.forfeit(g, g.Player); err != nil {
		return nil, err
	}
	return nil, cause
}

// ClaimForfeit lets the player collect the bond once the referee has
// missed the reveal deadline.
func (e *Engine) ClaimForfeit(player string) (*Game, error) {
	g := e.store.get(player)
	if g == nil || (g.Status != Won && g.Status != Lost) || g.Revealed {
		return nil, ErrBadState
	}
	if g.RevealDeadline == 0 {
		return nil, ErrBadState
	}
	if e.ledger.Now().Unix() <= g.RevealDeadline {
		return nil, ErrDeadlineNotPassed
	}
	if g.Bond == 0 {
		return nil, ErrNoBond
	}

	if err := e.forfeit(g, player); err != nil {
		return nil, err
	}
	return g.clone(), nil
}
