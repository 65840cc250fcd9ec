package dto

// LoginRequest payload for staff login. Exactly one credential shape is
// used per deployment: email+phone, or username+password.
type LoginRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// MeResponse echoes the authenticated staff identity.
type MeResponse struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Phone       string `json:"phone"`
	Designation string `json:"designation,omitempty"`
}

// SuccessResponse is the standard acknowledgement body.
type SuccessResponse struct {
	Success bool `json:"success"`
}
