package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spec-kit/staff-portal/internal/domain"
)

// fileNotesRepository keeps all notes in one local JSON file mapping
// principal keys to note text. The mutex serializes read-modify-write
// cycles within this process.
type fileNotesRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileNotesRepository builds the local-file backend. The file is created
// on the first save.
func NewFileNotesRepository(path string) NotesRepository {
	return &fileNotesRepository{path: path}
}

func (r *fileNotesRepository) Get(_ context.Context, principalKey string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load()
	if err != nil {
		return "", err
	}
	text, ok := notes[principalKey]
	if !ok {
		return "", domain.ErrNoteNotFound
	}
	return text, nil
}

func (r *fileNotesRepository) Put(_ context.Context, principalKey, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load()
	if err != nil {
		return err
	}
	notes[principalKey] = text

	content, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes file: %w", err)
	}
	if err := os.WriteFile(r.path, content, 0o600); err != nil {
		return fmt.Errorf("write notes file: %w", err)
	}
	return nil
}

func (r *fileNotesRepository) load() (map[string]string, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read notes file: %w", err)
	}

	notes := map[string]string{}
	if len(content) == 0 {
		return notes, nil
	}
	if err := json.Unmarshal(content, &notes); err != nil {
		return nil, fmt.Errorf("parse notes file: %w", err)
	}
	return notes, nil
}
