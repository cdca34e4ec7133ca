package engine

import (
	"github.com/tibfox/hangman-engine/internal"
	"github.com/tibfox/hangman-engine/ledger"
)

//
// Engine construction and the first three life-cycle transitions: Start,
// Commit, Answer. Reveal and ClaimForfeit live in reveal.go since they
// share the consistency-verifier and slashing logic.
//
// Grounded on contract/exported.go's go:wasmexport entrypoints
// (CreateGame/JoinGame/MakeMove/ClaimTimeout): each is guard-then-
// mutate-then-emit, translated here from functions returning *string to
// methods returning (T, error).
//

// Config holds the constants fixed when an Engine is created.
type Config struct {
	// RequiredBond is the exact bond amount Commit must attach.
	RequiredBond uint64

	// RevealDeadlineSeconds is how long, after a game ends, the referee
	// has to reveal before the player may claim forfeit. Defaults to
	// 1800 seconds if zero.
	RevealDeadlineSeconds int64

	// Referee is the single address authorized to call Commit, Answer,
	// and Reveal.
	Referee string

	// LengthOracle picks the word length for a new game. Must return a
	// value in [MinLen, MaxLen]. Defaults to a deterministic round-robin
	// over that range if nil.
	LengthOracle func(player string) int

	// Sink receives every emitted event. Defaults to a sink that
	// discards everything.
	Sink EventSink
}

const defaultRevealDeadlineSeconds = 1800

// Engine is the adjudication state machine: one Engine instance serves a
// single referee and an arbitrary number of players, each with their own
// keyed Game record.
type Engine struct {
	cfg     Config
	ledger  ledger.Ledger
	store   *store
	sink    EventSink
	oracleN int // round-robin cursor for the default LengthOracle
}

// New constructs an Engine bound to one referee identity, one ledger, and
// one configuration. cfg.RequiredBond must be nonzero.
func New(cfg Config, l ledger.Ledger) *Engine {
	if cfg.RevealDeadlineSeconds == 0 {
		cfg.RevealDeadlineSeconds = defaultRevealDeadlineSeconds
	}
	sink := cfg.Sink
	if sink == nil {
		sink = discardSink{}
	}
	e := &Engine{cfg: cfg, ledger: l, store: newStore(), sink: sink}
	if e.cfg.LengthOracle == nil {
		e.cfg.LengthOracle = e.defaultLengthOracle
	}
	return e
}

// defaultLengthOracle round-robins over [MinLen, MaxLen]. It is a
// placeholder with no real unpredictability; real deployments should
// inject their own LengthOracle (see DESIGN.md).
func (e *Engine) defaultLengthOracle(string) int {
	l := MinLen + e.oracleN%(MaxLen-MinLen+1)
	e.oracleN++
	return l
}

// Start begins a new game for player. Allowed from None or any terminal
// status; rejected while WaitingCommit or Active.
func (e *Engine) Start(player string) (*Game, error) {
	if g := e.store.get(player); g != nil {
		if g.Status == WaitingCommit || g.Status == Active {
			return nil, ErrBadState
		}
	}

	length := e.cfg.LengthOracle(player)
	if length < MinLen || length > MaxLen {
		length = MinLen
	}

	g := newGame(player, length)
	e.store.put(g)
	e.emitGameStarted(player, length, string(g.VisibleMask))
	return g.clone(), nil
}

// Commit stores the referee's word-hash commitment and escrows bondAmount.
// Only the configured referee may call this.
func (e *Engine) Commit(caller, player string, hash [32]byte, bondAmount uint64) (*Game, error) {
	if err := internal.Require(caller == e.cfg.Referee, ErrNotReferee); err != nil {
		return nil, err
	}
	g := e.store.get(player)
	if err := internal.Require(g != nil && g.Status == WaitingCommit, ErrBadState); err != nil {
		return nil, err
	}
	if err := internal.Require(g.Commitment == ([32]byte{}), ErrBadState); err != nil {
		return nil, err
	}
	if err := internal.Require(bondAmount == e.cfg.RequiredBond, ErrBadBond); err != nil {
		return nil, err
	}

	g.Commitment = hash
	g.Bond = bondAmount
	g.Status = Active
	e.emitWordCommitted(player, hash, bondAmount)
	return g.clone(), nil
}

// Answer records the referee's response to a guessed letter.
func (e *Engine) Answer(caller, player string, letterByte byte, positionsMask PositionsMask) (*Game, error) {
	if caller != e.cfg.Referee {
		return nil, ErrNotReferee
	}
	g := e.store.get(player)
	if g == nil || g.Status != Active {
		return nil, ErrBadState
	}
	l, err := Normalize(letterByte)
	if err != nil {
		return nil, err
	}
	if g.GuessedMask.has(l) {
		return nil, ErrAlreadyGuessed
	}
	if !MaskFits(positionsMask, g.Length) {
		return nil, ErrMaskOutOfRange
	}

	if positionsMask == 0 {
		e.recordWrong(g, l)
		e.emitRefereeAnswered(player, l, positionsMask, false)
		if g.WrongGuesses == MaxWrong {
			e.endGame(g, Lost)
		}
		return g.clone(), nil
	}

	if err := checkAgainstVisible(g, l, positionsMask); err != nil {
		return nil, err
	}
	e.recordCorrect(g, l, positionsMask)
	e.emitRefereeAnswered(player, l, positionsMask, true)
	if !g.visibleHasHoles() {
		e.endGame(g, Won)
	}
	return g.clone(), nil
}

// recordWrong applies the bookkeeping for a wrong answer.
func (e *Engine) recordWrong(g *Game, l Letter) {
	g.GuessedMask = g.GuessedMask.set(l)
	g.WrongMask = g.WrongMask.set(l)
	g.WrongGuesses++
}

// checkAgainstVisible is the consistency check run before accepting a
// correct answer: the new positions mask must agree with everything
// already revealed in VisibleMask.
func checkAgainstVisible(g *Game, l Letter, mask PositionsMask) error {
	ch := byte('a' + l)
	for i := 0; i < g.Length; i++ {
		bitSet := mask&(1<<uint(i)) != 0
		switch g.VisibleMask[i] {
		case HoleRune:
			// free; nothing to check yet.
		case ch:
			if !bitSet {
				return ErrContradictsRevealed
			}
		default:
			if bitSet {
				return ErrContradictsRevealed
			}
		}
	}
	return nil
}

// recordCorrect applies the bookkeeping for a correct answer: mark
// correct, store positions, reveal the letter everywhere its mask says
// it occurs.
func (e *Engine) recordCorrect(g *Game, l Letter, mask PositionsMask) {
	g.GuessedMask = g.GuessedMask.set(l)
	g.CorrectMask = g.CorrectMask.set(l)
	g.PositionsByLetter[l] = mask
	ch := byte('a' + l)
	for i := 0; i < g.Length; i++ {
		if mask&(1<<uint(i)) != 0 {
			g.VisibleMask[i] = ch
		}
	}
}

// endGame transitions g to Won or Lost and arms the reveal deadline.
func (e *Engine) endGame(g *Game, status Status) {
	g.Status = status
	g.RevealDeadline = e.ledger.Now().Unix() + e.cfg.RevealDeadlineSeconds
	e.emitGameEnded(g.Player, status)
}

// Observe returns an immutable snapshot of player's record. Never fails;
// callable in any state, including None, for which it returns a zeroed
// record.
func (e *Engine) Observe(player string) *Game {
	g := e.store.get(player)
	if g == nil {
		return &Game{Player: player, Status: None}
	}
	return g.clone()
}
