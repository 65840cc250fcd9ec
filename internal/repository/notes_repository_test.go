package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/repository"
)

func TestFileNotesRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	repo := repository.NewFileNotesRepository(path)
	ctx := context.Background()

	t.Run("missing entry reads as not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "maya@college.edu")
		require.ErrorIs(t, err, domain.ErrNoteNotFound)
	})

	t.Run("save then read", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "maya@college.edu", "remember deadlines"))
		text, err := repo.Get(ctx, "maya@college.edu")
		require.NoError(t, err)
		require.Equal(t, "remember deadlines", text)
	})

	t.Run("save is an idempotent full replace", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "maya@college.edu", "x"))
		require.NoError(t, repo.Put(ctx, "maya@college.edu", "x"))
		text, err := repo.Get(ctx, "maya@college.edu")
		require.NoError(t, err)
		require.Equal(t, "x", text)
	})

	t.Run("principals are isolated", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "ravi@college.edu", "other note"))
		text, err := repo.Get(ctx, "maya@college.edu")
		require.NoError(t, err)
		require.Equal(t, "x", text)
	})

	t.Run("values survive a reopen", func(t *testing.T) {
		reopened := repository.NewFileNotesRepository(path)
		text, err := reopened.Get(ctx, "ravi@college.edu")
		require.NoError(t, err)
		require.Equal(t, "other note", text)
	})
}

func TestNoopNotesBackend(t *testing.T) {
	repo := repository.NewNotesBackend(config.NotesConfig{}, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("reads as never saved", func(t *testing.T) {
		_, err := repo.Get(ctx, "maya@college.edu")
		require.ErrorIs(t, err, domain.ErrNoteNotFound)
	})

	t.Run("writes always fail", func(t *testing.T) {
		require.ErrorIs(t, repo.Put(ctx, "maya@college.edu", "x"), domain.ErrNotesUnavailable)
		require.ErrorIs(t, repo.Put(ctx, "maya@college.edu", "y"), domain.ErrNotesUnavailable)
	})
}

func TestNewNotesBackend_FileSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	repo := repository.NewNotesBackend(config.NotesConfig{FilePath: path}, nil, zap.NewNop())

	require.NoError(t, repo.Put(context.Background(), "maya@college.edu", "hello"))
	text, err := repo.Get(context.Background(), "maya@college.edu")
	require.NoError(t, err)
	require.Equal(t, "hello", text)
}
