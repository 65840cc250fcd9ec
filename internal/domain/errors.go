package domain

import "errors"

var (
	// ErrStaffNotFound signals that no staff record matches the lookup.
	ErrStaffNotFound = errors.New("staff record not found")

	// ErrNoteNotFound signals that the principal has never saved a note.
	ErrNoteNotFound = errors.New("note not found")

	// ErrReadOnlyBackend signals that the active staff backend cannot
	// create or update records.
	ErrReadOnlyBackend = errors.New("staff backend is read-only")

	// ErrNotesUnavailable signals that no notes backend is configured or
	// the backend rejected the write.
	ErrNotesUnavailable = errors.New("notes backend unavailable")
)
