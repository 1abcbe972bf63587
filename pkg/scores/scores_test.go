package scores

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	b := NewFileBackend(path)

	score, err := b.Load()
	require.NoError(t, err, "missing file is not an error")
	assert.Equal(t, 0, score)

	require.NoError(t, b.Save(4210))
	score, err = NewFileBackend(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 4210, score)

	require.NoError(t, b.Save(17))
	score, err = b.Load()
	require.NoError(t, err)
	assert.Equal(t, 17, score)
}

func TestFileBackend_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileBackend(path).Load()
	assert.Error(t, err)
}

func TestSqliteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	b, err := OpenSqlite(path, zerolog.Nop())
	require.NoError(t, err)

	score, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	require.NoError(t, b.Save(99))
	require.NoError(t, b.Save(120))
	require.NoError(t, b.Close())

	reopened, err := OpenSqlite(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	score, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, 120, score)

	var rows int64
	require.NoError(t, reopened.db.Model(&BestScore{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestMemoryBackend(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Save(3))
	score, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, score)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.ScoresConfig
		wantErr error
	}{
		{"file", config.ScoresConfig{Backend: "file", Path: filepath.Join(dir, "best.json")}, nil},
		{"sqlite", config.ScoresConfig{Backend: "sqlite", Path: filepath.Join(dir, "best.db")}, nil},
		{"memory", config.ScoresConfig{Backend: "memory"}, nil},
		{"unknown", config.ScoresConfig{Backend: "redis"}, ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(tt.cfg, zerolog.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, b.Close())
		})
	}
}

type failingBackend struct{}

func (failingBackend) Load() (int, error) { return 0, errors.New("disk on fire") }
func (failingBackend) Save(int) error     { return errors.New("disk on fire") }
func (failingBackend) Close() error       { return nil }

func TestKeeper_FailuresAreLogged(t *testing.T) {
	var buf bytes.Buffer
	k := NewKeeper(failingBackend{}, zerolog.New(&buf))

	assert.Equal(t, 0, k.LoadBestScore())
	k.SaveBestScore(50)

	out := buf.String()
	assert.Contains(t, out, "Failed to load best score")
	assert.Contains(t, out, "Failed to save best score")
	assert.Contains(t, out, "disk on fire")
}

func TestKeeper_MalformedFileLoadsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	require.NoError(t, os.WriteFile(path, []byte("[]garbage"), 0644))

	k := NewKeeper(NewFileBackend(path), zerolog.Nop())
	assert.Equal(t, 0, k.LoadBestScore())

	k.SaveBestScore(8)
	assert.Equal(t, 8, k.LoadBestScore(), "a save repairs the file")
}

func TestKeeper_NilBackend(t *testing.T) {
	k := NewKeeper(nil, zerolog.Nop())
	assert.Equal(t, 0, k.LoadBestScore())
	k.SaveBestScore(1)
	assert.NoError(t, k.Close())

	var nilKeeper *Keeper
	assert.Equal(t, 0, nilKeeper.LoadBestScore())
}

func TestKeeper_NegativeScoreIgnored(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Save(-4))
	assert.Equal(t, 0, NewKeeper(b, zerolog.Nop()).LoadBestScore())
}
