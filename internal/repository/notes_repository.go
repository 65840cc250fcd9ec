package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
)

// NotesRepository maps a principal key to its single note text. Absence is
// signalled with domain.ErrNoteNotFound; Put is an idempotent full replace.
type NotesRepository interface {
	Get(ctx context.Context, principalKey string) (string, error)
	Put(ctx context.Context, principalKey, text string) error
}

// NewNotesBackend selects the notes backend from configuration: the remote
// key-value store when redis is configured, else the local file, else a
// stand-in that reads empty and rejects writes.
func NewNotesBackend(cfg config.NotesConfig, client *redis.Client, logger *zap.Logger) NotesRepository {
	if client != nil {
		logger.Info("notes backend: redis")
		return NewRedisNotesRepository(client)
	}
	if cfg.FilePath != "" {
		logger.Info("notes backend: local file", zap.String("path", cfg.FilePath))
		return NewFileNotesRepository(cfg.FilePath)
	}
	logger.Warn("no notes backend configured; note saves will fail")
	return noopNotesRepository{}
}

// noopNotesRepository backs deployments with no storage configured. Reads
// behave as if nothing was ever saved; writes fail the same way for every
// request.
type noopNotesRepository struct{}

func (noopNotesRepository) Get(context.Context, string) (string, error) {
	return "", domain.ErrNoteNotFound
}

func (noopNotesRepository) Put(context.Context, string, string) error {
	return domain.ErrNotesUnavailable
}
