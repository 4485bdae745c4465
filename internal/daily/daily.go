package daily

import (
	"embed"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
	"github.com/robalobadob/wordle/apps/cmdle/internal/words"
)

// Migrations holds the schema for the results history, applied in lexical order.
//
//go:embed sql/*.sql
var Migrations embed.FS

// Epoch is day zero of the goal list.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD for t's calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DaysSinceEpoch counts whole calendar days from Epoch to t's date.
// Dates before the epoch are negative.
func DaysSinceEpoch(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours() / 24)
}

// WordIndex returns the goal list position for t: days since Epoch mod n.
func WordIndex(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	i := DaysSinceEpoch(t) % n
	if i < 0 {
		i += n
	}
	return i
}

// Goal picks the goal for t's date and validates it against the lists'
// own dictionary. It also returns the goal's position in the list.
func Goal(t time.Time, lists *words.Lists) (game.Word, int, error) {
	if lists == nil {
		return game.Word{}, 0, game.ErrDictionaryUnavailable
	}
	n, _ := lists.Stats()
	if n == 0 {
		return game.Word{}, 0, fmt.Errorf("%w: no goal words", words.ErrUnavailable)
	}
	i := WordIndex(t, n)
	w, err := game.NewWord(lists.Answer(i), lists)
	if err != nil {
		return game.Word{}, i, fmt.Errorf("goal %d: %w", i, err)
	}
	return w, i, nil
}
