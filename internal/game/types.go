// apps/cmdle/internal/game/types.go
//
// Core type definitions for the cmdle game engine.
// Defines:
//   - LetterResult: per-letter feedback for one guess (correct/wrong position/wrong letter).
//   - Result: the five LetterResults of one guess.
//   - LetterStatus: what is known about one alphabet letter across all guesses.
//   - Board: the 26-entry LetterStatus summary.
//   - State: in progress / won / lost.

package game

const (
	// WordLen is the number of letters in every word.
	WordLen = 5
	// MaxGuesses is the number of guesses a game allows.
	MaxGuesses = 6
)

// Alphabet is the fixed set of letters a Word may contain.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// LetterResult represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":        letter is in the goal at this position.
//   - "wrong_position": letter is in the goal at another position.
//   - "wrong_letter":   letter is not in the goal, or all its occurrences are used up.
type LetterResult string

const (
	Correct       LetterResult = "correct"
	WrongPosition LetterResult = "wrong_position"
	WrongLetter   LetterResult = "wrong_letter"
)

// Symbol is the single-character form used when output has no colour.
func (r LetterResult) Symbol() string {
	switch r {
	case Correct:
		return "O"
	case WrongPosition:
		return "X"
	default:
		return "-"
	}
}

// Result is the feedback for one guess, position by position.
type Result [WordLen]LetterResult

// Solved reports whether every position is Correct.
func (r Result) Solved() bool {
	for _, x := range r {
		if x != Correct {
			return false
		}
	}
	return true
}

// String renders the result as symbols, e.g. "OX--O".
func (r Result) String() string {
	b := make([]byte, 0, WordLen)
	for _, x := range r {
		b = append(b, x.Symbol()...)
	}
	return string(b)
}

// LetterStatus is the aggregated knowledge about one letter.
// Values are ordered: a higher status always wins when folding guesses.
type LetterStatus int

const (
	Unused LetterStatus = iota
	NotPresent
	FoundLetter
	FoundPosition
)

func (s LetterStatus) String() string {
	switch s {
	case NotPresent:
		return "not_present"
	case FoundLetter:
		return "found_letter"
	case FoundPosition:
		return "found_position"
	default:
		return "unused"
	}
}

// statusOf maps one guess verdict onto the board's scale.
func statusOf(r LetterResult) LetterStatus {
	switch r {
	case Correct:
		return FoundPosition
	case WrongPosition:
		return FoundLetter
	default:
		return NotPresent
	}
}

// Board holds one LetterStatus per alphabet letter, indexed 'a'=0 .. 'z'=25.
type Board [len(Alphabet)]LetterStatus

// Status returns the status of letter c. Letters outside a–z are Unused.
func (b Board) Status(c byte) LetterStatus {
	if c < 'a' || c > 'z' {
		return Unused
	}
	return b[idx(c)]
}

// State is the coarse lifecycle state of a Game.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(c byte) int { return int(c - 'a') }
