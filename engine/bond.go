package engine

//
// Escrow routing.
//
// Grounded on contract/g_timeout.go's finishGameTimeoutCommon/transferPot:
// a forced game end pays out the bond and then marks the record
// terminal, never the other way around, so an observer can never see a
// terminal status with bond still nonzero.
//

// forfeit pays amount to payee, then marks g Forfeit/Revealed and emits
// RefereeSlashed + GameEnded. Shared by Reveal's honesty-violation path
// and ClaimForfeit's timeout path, since both end the game the same way:
// bond to the player, status Forfeit.
func (e *Engine) forfeit(g *Game, payee string) error {
	amount := g.Bond
	if err := e.ledger.Transfer(payee, amount); err != nil {
		return ErrPayoutFailed
	}
	g.Bond = 0
	g.Revealed = true
	g.Status = Forfeit
	e.emitRefereeSlashed(g.Player, amount)
	e.emitGameEnded(g.Player, Forfeit)
	return nil
}
