package engine_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tibfox/hangman-engine/engine"
	"github.com/tibfox/hangman-engine/ledger"
)

// collectEvents returns an EventSink that appends every emitted event to
// the returned slice, for assertions against Event.Attributes.
func collectEvents() (engine.EventSink, *[]engine.Event) {
	events := make([]engine.Event, 0)
	sink := engine.EventSinkFunc(func(e engine.Event) {
		events = append(events, e)
	})
	return sink, &events
}

func findEvent(events []engine.Event, typ string) (engine.Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return engine.Event{}, false
}

func TestGameStartedEventCarriesHoleMask(t *testing.T) {
	sink, events := collectEvents()
	fl := ledger.NewFakeLedger(time.Unix(1_700_000_000, 0))
	e := engine.New(engine.Config{
		RequiredBond: bond,
		Referee:      referee,
		LengthOracle: func(string) int { return 4 },
		Sink:         sink,
	}, fl)

	_, err := e.Start("alice")
	require.NoError(t, err)

	ev, ok := findEvent(*events, engine.EventGameStarted)
	require.True(t, ok)
	require.Equal(t, "4", ev.Attributes["length"])
	require.Equal(t, "____", ev.Attributes["holeMask"])
}

func TestWordCommittedEventCarriesHash(t *testing.T) {
	sink, events := collectEvents()
	fl := ledger.NewFakeLedger(time.Unix(1_700_000_000, 0))
	e := engine.New(engine.Config{
		RequiredBond: bond,
		Referee:      referee,
		LengthOracle: func(string) int { return 4 },
		Sink:         sink,
	}, fl)

	_, err := e.Start("alice")
	require.NoError(t, err)
	hash := engine.Commit("alice", [32]byte{7}, "abcd")
	_, err = e.Commit(referee, "alice", hash, bond)
	require.NoError(t, err)

	ev, ok := findEvent(*events, engine.EventWordCommitted)
	require.True(t, ok)
	require.Equal(t, hex.EncodeToString(hash[:]), ev.Attributes["hash"])
	require.Equal(t, "1000", ev.Attributes["bond"])
}

func TestWordRevealedEventCarriesSalt(t *testing.T) {
	sink, events := collectEvents()
	fl := ledger.NewFakeLedger(time.Unix(1_700_000_000, 0))
	e := engine.New(engine.Config{
		RequiredBond: bond,
		Referee:      referee,
		LengthOracle: func(string) int { return 4 },
		Sink:         sink,
	}, fl)

	player := "alice"
	salt := [32]byte{3, 1, 4}
	word := "abcd"

	_, err := e.Start(player)
	require.NoError(t, err)

	g := playOutHonestly(t, e, player, word, salt)
	require.Equal(t, engine.Won, g.Status)

	_, err = e.Reveal(referee, player, word, salt)
	require.NoError(t, err)

	ev, ok := findEvent(*events, engine.EventWordRevealed)
	require.True(t, ok)
	require.Equal(t, word, ev.Attributes["word"])
	require.Equal(t, hex.EncodeToString(salt[:]), ev.Attributes["salt"])
}
