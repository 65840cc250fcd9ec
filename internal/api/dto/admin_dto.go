package dto

// AdminLoginRequest payload.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// CreateUserRequest payload for admin staff-account upserts.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
