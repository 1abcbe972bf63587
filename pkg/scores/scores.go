// Package scores persists the best score between runs.
package scores

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/rs/zerolog"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown scores backend")

// Backend stores a single best score.
type Backend interface {
	// Load returns the stored best score, or 0 when nothing has been saved yet.
	Load() (int, error)
	Save(score int) error
	Close() error
}

// Open creates the backend named by cfg.Backend.
func Open(cfg config.ScoresConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Backend {
	case "file":
		return NewFileBackend(cfg.Path), nil
	case "sqlite":
		return OpenSqlite(cfg.Path, log)
	case "postgres":
		return OpenPostgres(cfg.DSN, log)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

// Keeper wraps a Backend so that storage failures never interrupt play.
// Failures are logged and treated as "no best score".
type Keeper struct {
	backend Backend
	log     zerolog.Logger
}

// NewKeeper returns a Keeper over backend. A nil backend keeps nothing.
func NewKeeper(backend Backend, log zerolog.Logger) *Keeper {
	return &Keeper{
		backend: backend,
		log:     log.With().Str("component", "scores").Logger(),
	}
}

// LoadBestScore returns the stored best score, or 0 if it cannot be read.
func (k *Keeper) LoadBestScore() int {
	if k == nil || k.backend == nil {
		return 0
	}
	score, err := k.backend.Load()
	if err != nil {
		k.log.Warn().Err(err).Msg("Failed to load best score")
		return 0
	}
	if score < 0 {
		k.log.Warn().Int("score", score).Msg("Ignoring negative best score")
		return 0
	}
	return score
}

// SaveBestScore stores score. Errors are logged and dropped.
func (k *Keeper) SaveBestScore(score int) {
	if k == nil || k.backend == nil {
		return
	}
	if err := k.backend.Save(score); err != nil {
		k.log.Warn().Err(err).Int("score", score).Msg("Failed to save best score")
		return
	}
	k.log.Debug().Int("score", score).Msg("Saved best score")
}

// Close releases the underlying backend.
func (k *Keeper) Close() error {
	if k == nil || k.backend == nil {
		return nil
	}
	return k.backend.Close()
}
