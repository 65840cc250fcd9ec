package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/events"
	"github.com/spec-kit/staff-portal/internal/service"
)

// fakeNotesRepo lets tests force backend failures.
type fakeNotesRepo struct {
	notes  map[string]string
	getErr error
	putErr error
}

func (f *fakeNotesRepo) Get(_ context.Context, principalKey string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	text, ok := f.notes[principalKey]
	if !ok {
		return "", domain.ErrNoteNotFound
	}
	return text, nil
}

func (f *fakeNotesRepo) Put(_ context.Context, principalKey, text string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.notes[principalKey] = text
	return nil
}

func TestNotesService_Get_MasksAbsenceAndFailure(t *testing.T) {
	t.Run("never saved reads as empty", func(t *testing.T) {
		svc := service.NewNotesService(&fakeNotesRepo{notes: map[string]string{}}, nil, zap.NewNop())
		require.Equal(t, "", svc.Get(context.Background(), "maya@college.edu"))
	})

	// the read path deliberately hides backend trouble from the client
	t.Run("backend failure reads as empty", func(t *testing.T) {
		svc := service.NewNotesService(&fakeNotesRepo{getErr: errors.New("connection refused")}, nil, zap.NewNop())
		require.Equal(t, "", svc.Get(context.Background(), "maya@college.edu"))
	})

	t.Run("saved text reads back", func(t *testing.T) {
		svc := service.NewNotesService(&fakeNotesRepo{notes: map[string]string{"maya@college.edu": "hello"}}, nil, zap.NewNop())
		require.Equal(t, "hello", svc.Get(context.Background(), "maya@college.edu"))
	})
}

func TestNotesService_Save(t *testing.T) {
	t.Run("surfaces backend failure", func(t *testing.T) {
		svc := service.NewNotesService(&fakeNotesRepo{putErr: domain.ErrNotesUnavailable}, nil, zap.NewNop())
		err := svc.Save(context.Background(), "maya@college.edu", "x")
		require.ErrorIs(t, err, domain.ErrNotesUnavailable)
	})

	t.Run("publishes note_saved", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()
		var published []events.Event
		dispatcher.Subscribe(events.EventNoteSaved, func(_ context.Context, e events.Event) error {
			published = append(published, e)
			return nil
		})

		svc := service.NewNotesService(&fakeNotesRepo{notes: map[string]string{}}, dispatcher, zap.NewNop())
		require.NoError(t, svc.Save(context.Background(), "maya@college.edu", "hello"))
		require.Len(t, published, 1)
		require.Equal(t, "maya@college.edu", published[0].Principal)
	})
}
