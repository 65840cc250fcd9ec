package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/staff-portal/internal/domain"
)

// Cookie names for the two session kinds. They never share a cookie or a
// signing audience; possessing one grants nothing on the other's routes.
const (
	StaffCookieName = "staff_session"
	AdminCookieName = "admin_session"
)

const (
	staffAudience = "staff-session"
	adminAudience = "admin-session"
)

// SessionManager signs and verifies the cookie values for both session kinds.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager builds a new manager.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// sessionClaims is the JWT payload for both session kinds. Identifier is set
// only for staff sessions.
type sessionClaims struct {
	Identifier string             `json:"identifier,omitempty"`
	Kind       domain.SessionKind `json:"kind"`
	jwt.RegisteredClaims
}

// IssueStaff signs a staff session token carrying the record identifier.
func (sm *SessionManager) IssueStaff(identifier string) (string, time.Time, error) {
	if identifier == "" {
		return "", time.Time{}, errors.New("empty identifier")
	}
	return sm.sign(&sessionClaims{
		Identifier: identifier,
		Kind:       domain.SessionKindStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  identifier,
			Audience: jwt.ClaimStrings{staffAudience},
		},
	})
}

// IssueAdmin signs an admin session token carrying only the admin marker.
func (sm *SessionManager) IssueAdmin() (string, time.Time, error) {
	return sm.sign(&sessionClaims{
		Kind: domain.SessionKindAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: jwt.ClaimStrings{adminAudience},
		},
	})
}

// VerifyStaff validates a staff session token and returns the identifier it
// carries. Verification fails closed: tampering, a wrong audience, or an
// admin token all yield an error.
func (sm *SessionManager) VerifyStaff(tokenStr string) (string, error) {
	claims, err := sm.parse(tokenStr, staffAudience)
	if err != nil {
		return "", err
	}
	if claims.Kind != domain.SessionKindStaff || claims.Identifier == "" {
		return "", errors.New("not a staff session")
	}
	return claims.Identifier, nil
}

// VerifyAdmin validates an admin session token.
func (sm *SessionManager) VerifyAdmin(tokenStr string) error {
	claims, err := sm.parse(tokenStr, adminAudience)
	if err != nil {
		return err
	}
	if claims.Kind != domain.SessionKindAdmin || claims.Identifier != "" {
		return errors.New("not an admin session")
	}
	return nil
}

func (sm *SessionManager) sign(claims *sessionClaims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(sm.ttl)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	claims.IssuedAt = jwt.NewNumericDate(now)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(sm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (sm *SessionManager) parse(tokenStr, audience string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return sm.secret, nil
	}, jwt.WithAudience(audience))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
