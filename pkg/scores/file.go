package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type fileRecord struct {
	BestScore int       `json:"bestScore"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FileBackend keeps the best score in a small JSON document.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the best score. A missing file counts as 0.
func (f *FileBackend) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return rec.BestScore, nil
}

// Save overwrites the file with score.
func (f *FileBackend) Save(score int) error {
	data, err := json.MarshalIndent(fileRecord{BestScore: score, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	return os.Rename(tmp, f.path)
}

func (f *FileBackend) Close() error { return nil }
