package dto

// NotesRequest payload for saving a note.
type NotesRequest struct {
	Notes *string `json:"notes"`
}

// NotesResponse carries the stored note text.
type NotesResponse struct {
	Notes string `json:"notes"`
}
