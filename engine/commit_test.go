package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tibfox/hangman-engine/engine"
)

func TestNormalizeAcceptsBothCases(t *testing.T) {
	l, err := engine.Normalize('a')
	require.NoError(t, err)
	require.Equal(t, engine.Letter(0), l)

	l, err = engine.Normalize('Z')
	require.NoError(t, err)
	require.Equal(t, engine.Letter(25), l)
}

func TestNormalizeRejectsNonLetters(t *testing.T) {
	_, err := engine.Normalize('5')
	require.ErrorIs(t, err, engine.ErrInvalidLetter)

	_, err = engine.Normalize(' ')
	require.ErrorIs(t, err, engine.ErrInvalidLetter)
}

func TestMaskFitsBoundary(t *testing.T) {
	require.True(t, engine.MaskFits(0b0111, 4))
	require.False(t, engine.MaskFits(0b1000, 3))
	require.True(t, engine.MaskFits(0xFFFF, 16))
}

func TestCommitIsDeterministicAndSensitiveToEveryInput(t *testing.T) {
	salt := [32]byte{1, 2, 3}
	base := engine.Commit("alice", salt, "hello")

	require.Equal(t, base, engine.Commit("alice", salt, "hello"))
	require.NotEqual(t, base, engine.Commit("bob", salt, "hello"))
	require.NotEqual(t, base, engine.Commit("alice", [32]byte{9}, "hello"))
	require.NotEqual(t, base, engine.Commit("alice", salt, "world"))
}
