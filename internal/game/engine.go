// apps/cmdle/internal/game/engine.go
//
// Core game engine for a single cmdle session.
// Responsibilities:
//   - Hold the goal and the ordered guess history (at most MaxGuesses).
//   - Score guesses against the goal, handling repeated letters.
//   - Track state transitions: playing → won/lost.
//   - Fold every guess into the per-letter status board.
package game

import "errors"

// ErrGameFull is returned by AddGuess once the game is won or out of guesses.
var ErrGameFull = errors.New("game is over: no more guesses allowed")

// Game holds the state of a single cmdle game.
type Game struct {
	goal    Word
	guesses []Word
}

// New starts an empty game for goal.
func New(goal Word) *Game {
	return &Game{goal: goal, guesses: make([]Word, 0, MaxGuesses)}
}

// Goal returns the word being guessed.
func (g *Game) Goal() Word { return g.goal }

// Guesses returns a copy of the guesses in the order they were made.
func (g *Game) Guesses() []Word {
	out := make([]Word, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// GuessCount is the number of guesses made so far.
func (g *Game) GuessCount() int { return len(g.guesses) }

// Remaining is the number of guesses still available.
func (g *Game) Remaining() int { return MaxGuesses - len(g.guesses) }

// AddGuess appends guess to the history.
// Fails with ErrGameFull, leaving the game untouched, when the game is
// already won or has used every guess.
func (g *Game) AddGuess(guess Word) error {
	if g.IsFull() || g.IsWon() {
		return ErrGameFull
	}
	g.guesses = append(g.guesses, guess)
	return nil
}

// IsFull reports whether every guess has been used.
func (g *Game) IsFull() bool { return len(g.guesses) >= MaxGuesses }

// IsWon reports whether the most recent guess is the goal.
func (g *Game) IsWon() bool {
	if len(g.guesses) == 0 {
		return false
	}
	return g.guesses[len(g.guesses)-1] == g.goal
}

// IsLost reports whether all guesses are used without finding the goal.
func (g *Game) IsLost() bool { return g.IsFull() && !g.IsWon() }

// State reports the lifecycle state. Won and Lost are terminal.
func (g *Game) State() State {
	switch {
	case g.IsWon():
		return Won
	case g.IsLost():
		return Lost
	}
	return InProgress
}

// CompareToGoal scores guess against this game's goal.
func (g *Game) CompareToGoal(guess Word) Result { return Compare(guess, g.goal) }

// Results scores every guess made so far, in order.
func (g *Game) Results() []Result {
	out := make([]Result, len(g.guesses))
	for i, w := range g.guesses {
		out[i] = g.CompareToGoal(w)
	}
	return out
}

// Board folds every guess into one status per letter. A letter keeps the
// highest status any guess gave it, so FoundPosition is never lost to a
// later WrongLetter verdict for the same letter.
func (g *Game) Board() Board {
	var b Board
	for _, w := range g.guesses {
		res := g.CompareToGoal(w)
		for i := 0; i < WordLen; i++ {
			j := idx(w.At(i))
			if s := statusOf(res[i]); s > b[j] {
				b[j] = s
			}
		}
	}
	return b
}

// Compare scores guess against goal in a single left-to-right pass.
//
// Each goal letter can be claimed once per occurrence. A guess letter is
// Correct when it matches the goal at that position, WrongPosition when the
// goal has it elsewhere, and WrongLetter when the goal lacks it or every
// occurrence was already claimed by an earlier position. Because claims are
// made in position order, "aabbb" against "ababa" gives
// Correct, WrongPosition, WrongPosition, Correct, WrongLetter.
func Compare(guess, goal Word) Result {
	var res Result

	// Remaining unclaimed occurrences per letter (a–z).
	var counts [len(Alphabet)]int
	for i := 0; i < WordLen; i++ {
		counts[idx(goal.At(i))]++
	}

	for i := 0; i < WordLen; i++ {
		c := guess.At(i)
		j := idx(c)
		switch {
		case counts[j] > 0 && c == goal.At(i):
			res[i] = Correct
			counts[j]--
		case counts[j] > 0 && goal.contains(c):
			res[i] = WrongPosition
			counts[j]--
		default:
			res[i] = WrongLetter
		}
	}
	return res
}
