package domain

// SessionKind differentiates staff sessions from admin sessions. The two
// kinds share no cookie, signing audience, or protected surface.
type SessionKind string

const (
	SessionKindStaff SessionKind = "STAFF"
	SessionKindAdmin SessionKind = "ADMIN"
)
