package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/events"
	"github.com/spec-kit/staff-portal/internal/repository"
)

// NotesService wraps the notes backend with the read-masking contract: a
// principal that never saved, and a backend that is down, both read as "".
type NotesService struct {
	notes      repository.NotesRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotesService builds the service.
func NewNotesService(notes repository.NotesRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotesService {
	return &NotesService{notes: notes, dispatcher: dispatcher, logger: logger}
}

// Get returns the principal's note text. Absence and backend failures both
// collapse to an empty string; failures are logged, never surfaced.
func (s *NotesService) Get(ctx context.Context, principalKey string) string {
	text, err := s.notes.Get(ctx, principalKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNoteNotFound) {
			s.logger.Warn("notes backend read failed; masking as empty",
				zap.String("principal", principalKey), zap.Error(err))
		}
		return ""
	}
	return text
}

// Save replaces the principal's note. Unlike reads, backend failures are
// surfaced to the caller.
func (s *NotesService) Save(ctx context.Context, principalKey, text string) error {
	if err := s.notes.Put(ctx, principalKey, text); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventNoteSaved,
			Principal: principalKey,
			Timestamp: time.Now(),
			Payload:   events.NoteSavedPayload{Length: len(text)},
		})
	}
	return nil
}
