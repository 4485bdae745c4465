// apps/cmdle/internal/store/memory.go
//
// In-memory implementation of the Store interface, used by tests.
// Snapshots are copied on the way in and revalidated on
// the way out, so callers never share a *game.Game with the store.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
)

// memory is an in-memory Store implementation.
type memory struct {
	mu   sync.RWMutex // guards fields below
	game *game.Snapshot
	cfg  *Config
}

// NewMemoryStore constructs a new, empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) LoadGame(ctx context.Context, dict game.Dictionary) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.game == nil {
		return nil, &PersistenceError{Kind: NotFound, Path: "memory:" + gameFile}
	}
	g, err := game.Restore(*m.game, dict)
	if err != nil {
		return nil, &PersistenceError{Kind: Corrupt, Path: "memory:" + gameFile, Err: err}
	}
	return g, nil
}

func (m *memory) SaveGame(ctx context.Context, g *game.Game) error {
	snap := g.Snapshot()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.game = &snap
	return nil
}

func (m *memory) LoadConfig(ctx context.Context) (Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cfg == nil {
		return Config{}, &PersistenceError{Kind: NotFound, Path: "memory:" + configFile}
	}
	return *m.cfg, nil
}

func (m *memory) SaveConfig(ctx context.Context, cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = &cfg
	return nil
}
