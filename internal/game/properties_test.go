package game

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// smallWord draws words over a five-letter alphabet so repeats are common.
func smallWord(t *rapid.T, label string) Word {
	s := rapid.StringMatching(`[a-e]{5}`).Draw(t, label)
	w, err := NewWord(s, anyWord)
	if err != nil {
		t.Fatalf("NewWord(%q): %v", s, err)
	}
	return w
}

func TestProperty_ValidWordsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-z]{5}`).Draw(t, "text")
		pad := rapid.StringMatching(`[ \t]{0,3}`).Draw(t, "pad")
		w, err := NewWord(pad+s+pad, dictOf(s))
		if err != nil {
			t.Fatalf("NewWord(%q): %v", s, err)
		}
		if w.String() != s {
			t.Fatalf("String() = %q, want %q", w.String(), s)
		}
	})
}

func TestProperty_WrongLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Filter(func(n int) bool { return n != WordLen }).Draw(t, "n")
		s := strings.Repeat("a", n)
		if _, err := NewWord(s, anyWord); err == nil || !isKind(err, WrongLength) {
			t.Fatalf("NewWord(%q) = %v, want WrongLength", s, err)
		}
	})
}

func TestProperty_CompareBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		guess, goal := smallWord(t, "guess"), smallWord(t, "goal")
		res := Compare(guess, goal)

		claimed := map[byte]int{}
		for i := 0; i < WordLen; i++ {
			c := guess.At(i)
			if res[i] == Correct && c != goal.At(i) {
				t.Fatalf("position %d Correct but %c != %c", i, c, goal.At(i))
			}
			if !goal.contains(c) && res[i] != WrongLetter {
				t.Fatalf("position %d: %c absent from goal but got %s", i, c, res[i])
			}
			if res[i] != WrongLetter {
				claimed[c]++
			}
		}
		for c, n := range claimed {
			if have := strings.Count(goal.String(), string(c)); n > have {
				t.Fatalf("%c reported %d times, goal has %d", c, n, have)
			}
		}
	})
}

func TestProperty_CompareSelfIsSolved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := smallWord(t, "word")
		if !Compare(w, w).Solved() {
			t.Fatalf("Compare(%s, %s) = %s", w, w, Compare(w, w))
		}
	})
}

func TestProperty_BoardMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(smallWord(t, "goal"))
		prev := g.Board()
		n := rapid.IntRange(1, MaxGuesses+2).Draw(t, "guesses")
		for i := 0; i < n; i++ {
			w := smallWord(t, fmt.Sprintf("guess-%d", i))
			terminal := g.State() != InProgress
			err := g.AddGuess(w)
			if terminal != (err != nil) {
				t.Fatalf("AddGuess on state %s returned %v", g.State(), err)
			}

			next := g.Board()
			if next != g.Board() {
				t.Fatalf("Board is not idempotent")
			}
			for j := range next {
				if next[j] < prev[j] {
					t.Fatalf("letter %c went from %s to %s", Alphabet[j], prev[j], next[j])
				}
				if prev[j] == FoundPosition && next[j] != FoundPosition {
					t.Fatalf("letter %c lost FoundPosition", Alphabet[j])
				}
			}
			prev = next

			guesses := g.Guesses()
			wantWon := len(guesses) > 0 && guesses[len(guesses)-1] == g.Goal()
			if g.IsWon() != wantWon {
				t.Fatalf("IsWon() = %v, want %v", g.IsWon(), wantWon)
			}
			if g.GuessCount() > MaxGuesses {
				t.Fatalf("%d guesses recorded", g.GuessCount())
			}
		}
	})
}

func isKind(err error, kind ValidationKind) bool {
	v, ok := err.(*ValidationError)
	return ok && v.Kind == kind
}
