package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/repository"
	apperrors "github.com/spec-kit/staff-portal/pkg/util"
)

const staffRecordKey = "auth_staff_record"

// SessionMiddleware guards routes behind the two session kinds.
type SessionMiddleware struct {
	sessions *SessionManager
	staff    repository.StaffRepository
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions *SessionManager, staff repository.StaffRepository) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, staff: staff}
}

// RequireStaff verifies the staff cookie and re-resolves the identifier
// against the active staff backend, so a record removed after login is
// locked out on its next request.
func (m *SessionMiddleware) RequireStaff(c *fiber.Ctx) error {
	token := c.Cookies(StaffCookieName)
	if token == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	identifier, err := m.sessions.VerifyStaff(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid session")
	}

	rec, err := m.staff.GetByIdentifier(c.Context(), identifier)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			return apperrors.NewUnauthorized("invalid session")
		}
		return apperrors.MapError(err)
	}

	c.Locals(staffRecordKey, rec)
	return c.Next()
}

// RequireAdmin verifies the admin cookie. There is no per-admin identity, so
// a valid marker is the whole check.
func (m *SessionMiddleware) RequireAdmin(c *fiber.Ctx) error {
	token := c.Cookies(AdminCookieName)
	if token == "" {
		return apperrors.NewForbidden("admin session required")
	}
	if err := m.sessions.VerifyAdmin(token); err != nil {
		return apperrors.NewForbidden("invalid admin session")
	}
	return c.Next()
}

// StaffFromContext retrieves the authenticated staff record.
func StaffFromContext(c *fiber.Ctx) (*domain.StaffRecord, bool) {
	val := c.Locals(staffRecordKey)
	if val == nil {
		return nil, false
	}
	rec, ok := val.(*domain.StaffRecord)
	return rec, ok
}
