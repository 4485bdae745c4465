package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
)

var anyWord = game.DictionaryFunc(func(string) bool { return true })

func word(t *testing.T, s string) game.Word {
	t.Helper()
	w, err := game.NewWord(s, anyWord)
	require.NoError(t, err)
	return w
}

func plain() *Renderer { return New(&bytes.Buffer{}, false) }

func TestGuess_Plain(t *testing.T) {
	guess := word(t, "there")
	out := plain().Guess(guess, game.Compare(guess, word(t, "hello")))
	assert.Equal(t, " T  H  E  R  E   -XX--", out)
	assert.NotContains(t, out, "\x1b")
}

func TestGrid_PadsToMaxGuesses(t *testing.T) {
	g := game.New(word(t, "hello"))
	require.NoError(t, g.AddGuess(word(t, "there")))

	lines := strings.Split(plain().Grid(g), "\n")
	require.Len(t, lines, game.MaxGuesses)
	assert.True(t, strings.HasSuffix(lines[0], "-XX--"))
	for _, l := range lines[1:] {
		assert.Equal(t, " _  _  _  _  _ ", l)
	}
}

func TestBoard_Plain(t *testing.T) {
	g := game.New(word(t, "hello"))
	require.NoError(t, g.AddGuess(word(t, "hulks")))

	lines := strings.Split(plain().Board(g.Board()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "[H]")
	assert.Contains(t, lines[1], " . ") // 'k' and 's' are not in the goal
	assert.Contains(t, lines[0], " Q ")
	assert.NotContains(t, lines[0], " U ")
	assert.True(t, strings.HasPrefix(lines[2], "  "))
}

func TestStatus(t *testing.T) {
	r := plain()
	g := game.New(word(t, "hello"))
	assert.Equal(t, "Guess 0/6, 6 left.", r.Status(g))

	require.NoError(t, g.AddGuess(word(t, "hello")))
	assert.Equal(t, "Solved in 1/6!", r.Status(g))

	lost := game.New(word(t, "hello"))
	for i := 0; i < game.MaxGuesses; i++ {
		require.NoError(t, lost.AddGuess(word(t, "carts")))
	}
	assert.Equal(t, "Out of guesses. The word was HELLO.", r.Status(lost))
}

func TestGame_DoesNotMutate(t *testing.T) {
	g := game.New(word(t, "hello"))
	require.NoError(t, g.AddGuess(word(t, "there")))
	before := g.Snapshot()

	out := plain().Game(g)
	assert.Contains(t, out, "Guess 1/6, 5 left.")
	assert.Equal(t, before, g.Snapshot())
}

func TestGuess_ColorKeepsLetters(t *testing.T) {
	guess := word(t, "hello")
	out := New(&bytes.Buffer{}, true).Guess(guess, game.Compare(guess, guess))
	for _, c := range "HELLO" {
		assert.Contains(t, out, string(c))
	}
	assert.NotContains(t, out, "OOOOO")
	assert.Contains(t, out, "\x1b[")
}
