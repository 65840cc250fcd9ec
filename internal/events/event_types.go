package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffAccountCreated EventType = "staff_account_created"
	EventNoteSaved           EventType = "note_saved"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Principal string      `json:"principal"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// StaffAccountCreatedPayload payload.
type StaffAccountCreatedPayload struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
}

// NoteSavedPayload payload.
type NoteSavedPayload struct {
	Length int `json:"length"`
}
