package engine

import "errors"

// Failure kinds, one sentinel per distinct error family. Callers match
// with errors.Is; the engine never wraps these in additional context so
// a machine-readable kind survives unchanged to the collaborator boundary.
var (
	// Input validation.
	ErrInvalidLetter   = errors.New("engine: invalid letter")
	ErrMaskOutOfRange  = errors.New("engine: positions mask out of range for word length")
	ErrLengthMismatch  = errors.New("engine: revealed word length does not match committed length")
	ErrBadBond         = errors.New("engine: bond amount does not match required bond")

	// State-machine violation.
	ErrBadState          = errors.New("engine: operation not valid in current game state")
	ErrAlreadyGuessed    = errors.New("engine: letter already guessed")
	ErrDeadlineNotPassed = errors.New("engine: reveal deadline has not passed")
	ErrNoBond            = errors.New("engine: no bond held in escrow")
	ErrNotReferee        = errors.New("engine: caller is not the designated referee")

	// An answer contradicting earlier answers: the answer is rejected and
	// the game is left unchanged; the bond is not touched.
	ErrContradictsRevealed = errors.New("engine: answer contradicts a previously revealed position")

	// Honesty violations at reveal, all fatal to the referee's bond.
	ErrCommitMismatch     = errors.New("engine: revealed word/salt does not match the stored commitment")
	ErrWrongLetterPresent = errors.New("engine: a letter answered as wrong is present in the revealed word")
	ErrPositionsMismatch  = errors.New("engine: a letter's revealed positions differ from what was answered")
	ErrMaskMismatch       = errors.New("engine: visible mask disagrees with the revealed word")
)
