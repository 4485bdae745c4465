package daily

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
)

// Result is one finished daily game.
type Result struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	WordIndex int       `json:"wordIndex"`
	Goal      string    `json:"goal"`
	Guesses   int       `json:"guesses"`
	Won       bool      `json:"won"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary aggregates every stored result.
type Summary struct {
	Played        int
	Wins          int
	CurrentStreak int                      // wins on consecutive days, ending at the latest result
	Distribution  [game.MaxGuesses + 1]int // wins by guess count, index 1..MaxGuesses
}

// WinRate is the share of games won, 0..100.
func (s Summary) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// Store persists daily results in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE date=?", date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records r. Only the first result per date is kept; later
// inserts for the same date are ignored. It reports whether a row was added.
func (s *Store) InsertResult(ctx context.Context, r Result) (bool, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(id, date, word_index, goal, guesses, won)
		VALUES(?,?,?,?,?,?)`, r.ID, r.Date, r.WordIndex, r.Goal, r.Guesses, r.Won,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Recent returns up to limit results, newest date first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, word_index, goal, guesses, won, created_at
		FROM daily_results
		ORDER BY date DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var created string
		if err := rows.Scan(&r.ID, &r.Date, &r.WordIndex, &r.Goal, &r.Guesses, &r.Won, &created); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("result %s: created_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary aggregates all results. The streak runs back from the latest
// recorded date and ends at the first loss or skipped calendar day.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, guesses, won FROM daily_results ORDER BY date DESC`,
	)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	var sum Summary
	var prev time.Time
	streakOpen := true
	for rows.Next() {
		var date string
		var guesses int
		var won bool
		if err := rows.Scan(&date, &guesses, &won); err != nil {
			return Summary{}, err
		}
		sum.Played++
		if won {
			sum.Wins++
			if guesses >= 1 && guesses <= game.MaxGuesses {
				sum.Distribution[guesses]++
			}
		}

		if !streakOpen {
			continue
		}
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return Summary{}, fmt.Errorf("result date %q: %w", date, err)
		}
		if !won || (!prev.IsZero() && !day.AddDate(0, 0, 1).Equal(prev)) {
			streakOpen = false
			continue
		}
		sum.CurrentStreak++
		prev = day
	}
	return sum, rows.Err()
}
