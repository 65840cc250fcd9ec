package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/staff-portal/internal/domain"
)

const notesKeyPrefix = domain.NoteRowKey + ":"

// redisNotesRepository stores one note value per principal under
// notes:<principalKey>. Writes are plain SETs, so the last writer wins.
type redisNotesRepository struct {
	client *redis.Client
}

// NewRedisNotesRepository builds the remote key-value backend.
func NewRedisNotesRepository(client *redis.Client) NotesRepository {
	return &redisNotesRepository{client: client}
}

func (r *redisNotesRepository) Get(ctx context.Context, principalKey string) (string, error) {
	val, err := r.client.Get(ctx, notesKeyPrefix+principalKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoteNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisNotesRepository) Put(ctx context.Context, principalKey, text string) error {
	return r.client.Set(ctx, notesKeyPrefix+principalKey, text, 0).Err()
}
