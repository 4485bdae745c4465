package game

import "fmt"

// Snapshot is the persisted shape of a Game.
type Snapshot struct {
	Goal    string   `json:"goal"`
	Guesses []string `json:"guesses"`
}

// Snapshot captures the game as plain strings.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Goal: g.goal.String(), Guesses: make([]string, len(g.guesses))}
	for i, w := range g.guesses {
		s.Guesses[i] = w.String()
	}
	return s
}

// Restore rebuilds a Game from a snapshot, revalidating every word against
// dict and replaying the guesses in order. A snapshot that could not have
// been produced by play (bad word, too many guesses, guesses after a win)
// is rejected as a whole.
func Restore(s Snapshot, dict Dictionary) (*Game, error) {
	goal, err := NewWord(s.Goal, dict)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	if len(s.Guesses) > MaxGuesses {
		return nil, fmt.Errorf("%d guesses stored, at most %d allowed", len(s.Guesses), MaxGuesses)
	}
	g := New(goal)
	for i, raw := range s.Guesses {
		w, err := NewWord(raw, dict)
		if err != nil {
			return nil, fmt.Errorf("guess %d: %w", i+1, err)
		}
		if err := g.AddGuess(w); err != nil {
			return nil, fmt.Errorf("guess %d: %w", i+1, err)
		}
	}
	return g, nil
}
