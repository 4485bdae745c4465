// apps/cmdle/internal/store/store.go
//
// Snapshot persistence for the current game and the player config.
// A store holds at most one game: the CLI reads it once at the start of a
// command and writes it once at the end.

package store

import (
	"context"
	"fmt"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
)

// Store defines the persistence interface for the game snapshot and config.
// Implementations may be backed by files (FileStore) or memory.
type Store interface {
	// LoadGame restores the stored game, revalidating its words with dict.
	// Returns ErrNotFound if nothing is stored and ErrCorrupt if the stored
	// record cannot be turned back into a game.
	LoadGame(ctx context.Context, dict game.Dictionary) (*game.Game, error)

	// SaveGame replaces the stored game with g.
	SaveGame(ctx context.Context, g *game.Game) error

	// LoadConfig returns the stored config, or ErrNotFound.
	LoadConfig(ctx context.Context) (Config, error)

	// SaveConfig replaces the stored config.
	SaveConfig(ctx context.Context, cfg Config) error
}

// Config is the persisted player configuration.
type Config struct {
	TestInt int `json:"test_int"`
}

// Kind classifies a persistence failure.
type Kind int

const (
	NotFound Kind = iota + 1
	Corrupt
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Corrupt:
		return "corrupt"
	case IOFailure:
		return "i/o failure"
	}
	return "unknown"
}

// PersistenceError reports a failed load or save.
type PersistenceError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	switch {
	case e.Kind == NotFound:
		return fmt.Sprintf("%s: nothing stored (have you run \"cmdle daily\"?)", e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is matches any PersistenceError of the same kind.
func (e *PersistenceError) Is(target error) bool {
	t, ok := target.(*PersistenceError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound = &PersistenceError{Kind: NotFound}
	ErrCorrupt  = &PersistenceError{Kind: Corrupt}
	ErrIO       = &PersistenceError{Kind: IOFailure}
)
