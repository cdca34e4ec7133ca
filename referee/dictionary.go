// Package referee implements an automated referee: a collaborator that
// both picks the secret word and drives the engine's Commit/Answer/Reveal
// calls honestly, for hosts that want a fully scripted opponent instead of
// wiring a human or external process behind the Engine's referee identity.
//
// Grounded on contract/g_create.go's initNewGame/applyOptionalBetOnCreate
// pairing: one collaborator that both selects game content and funds the
// escrow in the same step.
package referee

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/tibfox/hangman-engine/engine"
)

// ErrEmptyWordList is returned by NewDictionaryReferee when words is empty.
var ErrEmptyWordList = errors.New("referee: word list is empty")

// ErrNoActiveWord is returned when Answer or Reveal is called for a player
// the referee never committed a word for (or already revealed).
var ErrNoActiveWord = errors.New("referee: no word on file for this player")

type pending struct {
	word string
	salt [32]byte
}

// DictionaryReferee draws words round-robin from a fixed list and answers
// every guess truthfully. It is the degenerate, always-honest referee a
// demo or test host can wire in when no real adjudicator is available.
type DictionaryReferee struct {
	id     string
	engine *engine.Engine
	words  []string
	cursor int
	active map[string]pending
}

// NewDictionaryReferee builds a DictionaryReferee bound to one engine and
// one fixed word list. All words must be within [engine.MinLen,
// engine.MaxLen] and contain only letters; this is not checked here since
// the engine's own LengthOracle and Answer validation enforce it per call.
func NewDictionaryReferee(id string, e *engine.Engine, words []string) (*DictionaryReferee, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	return &DictionaryReferee{
		id:     id,
		engine: e,
		words:  append([]string(nil), words...),
		active: make(map[string]pending),
	}, nil
}

// nextWord returns the next word in round-robin order.
func (d *DictionaryReferee) nextWord() string {
	w := d.words[d.cursor%len(d.words)]
	d.cursor++
	return w
}

// StartAndCommit starts a new game for player and immediately commits the
// next dictionary word with the given bond, in one call.
func (d *DictionaryReferee) StartAndCommit(player string, bond uint64) (*engine.Game, error) {
	if _, err := d.engine.Start(player); err != nil {
		return nil, err
	}

	word := d.nextWord()
	var salt [32]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("referee: generating salt: %w", err)
	}
	hash := engine.Commit(player, salt, word)
	g, err := d.engine.Commit(d.id, player, hash, bond)
	if err != nil {
		return nil, err
	}
	d.active[player] = pending{word: word, salt: salt}
	return g, nil
}

// Answer computes the true positions mask for letterByte against the word
// on file for player and forwards it to the engine.
func (d *DictionaryReferee) Answer(player string, letterByte byte) (*engine.Game, error) {
	p, ok := d.active[player]
	if !ok {
		return nil, ErrNoActiveWord
	}
	l, err := engine.Normalize(letterByte)
	if err != nil {
		return nil, err
	}
	var mask engine.PositionsMask
	for i := 0; i < len(p.word); i++ {
		pl, err := engine.Normalize(p.word[i])
		if err != nil {
			return nil, err
		}
		if pl == l {
			mask |= 1 << uint(i)
		}
	}
	return d.engine.Answer(d.id, player, letterByte, mask)
}

// Reveal opens the committed word for player and forgets it, win or lose.
func (d *DictionaryReferee) Reveal(player string) (*engine.Game, error) {
	p, ok := d.active[player]
	if !ok {
		return nil, ErrNoActiveWord
	}
	g, err := d.engine.Reveal(d.id, player, p.word, p.salt)
	delete(d.active, player)
	return g, err
}
