package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cmdle/internal/game"
)

const (
	gameFile   = "game.json"
	configFile = "config.json"
)

// FileStore keeps snapshots as JSON files under a base directory.
// Writes are plain truncate-and-write; a crash mid-write can leave a
// corrupt file, which the next load reports as ErrCorrupt.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the base directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) LoadGame(ctx context.Context, dict game.Dictionary) (*game.Game, error) {
	path := filepath.Join(s.dir, gameFile)
	var snap game.Snapshot
	if err := s.read(path, &snap, "goal", "guesses"); err != nil {
		return nil, err
	}
	g, err := game.Restore(snap, dict)
	if err != nil {
		return nil, &PersistenceError{Kind: Corrupt, Path: path, Err: err}
	}
	log.Debug().Str("path", path).Int("guesses", g.GuessCount()).Msg("game loaded")
	return g, nil
}

func (s *FileStore) SaveGame(ctx context.Context, g *game.Game) error {
	return s.write(filepath.Join(s.dir, gameFile), g.Snapshot())
}

func (s *FileStore) LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	err := s.read(filepath.Join(s.dir, configFile), &cfg, "test_int")
	return cfg, err
}

func (s *FileStore) SaveConfig(ctx context.Context, cfg Config) error {
	return s.write(filepath.Join(s.dir, configFile), cfg)
}

// read decodes the JSON object at path into v. A missing key counts as
// corruption.
func (s *FileStore) read(path string, v any, keys ...string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Kind: NotFound, Path: path}
	}
	if err != nil {
		return &PersistenceError{Kind: IOFailure, Path: path, Err: err}
	}
	if err := decodeObject(b, v, keys); err != nil {
		return &PersistenceError{Kind: Corrupt, Path: path, Err: err}
	}
	return nil
}

func (s *FileStore) write(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "   ")
	if err != nil {
		return &PersistenceError{Kind: IOFailure, Path: path, Err: err}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &PersistenceError{Kind: IOFailure, Path: path, Err: fmt.Errorf("mkdir %s: %w", s.dir, err)}
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return &PersistenceError{Kind: IOFailure, Path: path, Err: err}
	}
	log.Debug().Str("path", path).Msg("snapshot saved")
	return nil
}

func decodeObject(b []byte, v any, keys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("not a JSON object: %w", err)
	}
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("missing %q", key)
		}
	}
	return json.Unmarshal(b, v)
}
