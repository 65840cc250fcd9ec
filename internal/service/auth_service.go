package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/auth"
	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/events"
	"github.com/spec-kit/staff-portal/internal/repository"
)

// ErrInvalidCredentials is returned for every failed login shape so that
// callers cannot tell a missing account from a wrong credential.
var ErrInvalidCredentials = errors.New("invalid credentials")

// StaffLogin is a login attempt in either supported shape. Email/Phone and
// Username/Password are mutually exclusive per deployment.
type StaffLogin struct {
	Email    string
	Phone    string
	Username string
	Password string
}

// AuthService coordinates staff and admin login flows and admin-driven
// account upserts.
type AuthService struct {
	staff         repository.StaffRepository
	sessions      *auth.SessionManager
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	adminPassword string
	bcryptCost    int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	StaffRepo  repository.StaffRepository
	Sessions   *auth.SessionManager
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		staff:         deps.StaffRepo,
		sessions:      deps.Sessions,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
		adminPassword: cfg.AdminPassword,
		bcryptCost:    cfg.BcryptCost,
	}
}

// LoginStaff resolves the attempt against the active backend and issues a
// staff session token. All failure modes collapse to ErrInvalidCredentials.
func (s *AuthService) LoginStaff(ctx context.Context, input StaffLogin) (*domain.StaffRecord, string, time.Time, error) {
	rec, err := s.resolve(ctx, input)
	if err != nil {
		s.logger.Debug("staff login rejected", zap.Error(err))
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.sessions.IssueStaff(rec.Identifier)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return rec, token, exp, nil
}

func (s *AuthService) resolve(ctx context.Context, input StaffLogin) (*domain.StaffRecord, error) {
	if input.Username != "" || input.Password != "" {
		if input.Username == "" || input.Password == "" {
			return nil, domain.ErrStaffNotFound
		}
		rec, err := s.staff.GetByIdentifier(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if rec.PasswordHash == "" {
			return nil, domain.ErrStaffNotFound
		}
		if err := auth.ComparePassword(rec.PasswordHash, input.Password); err != nil {
			return nil, domain.ErrStaffNotFound
		}
		return rec, nil
	}
	if input.Email == "" || input.Phone == "" {
		return nil, domain.ErrStaffNotFound
	}
	return s.staff.ResolveByEmailPhone(ctx, input.Email, input.Phone)
}

// LoginAdmin checks the shared admin secret and issues an admin session
// token. An empty configured secret disables admin login entirely.
func (s *AuthService) LoginAdmin(_ context.Context, password string) (string, time.Time, error) {
	if s.adminPassword == "" || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.sessions.IssueAdmin()
}

// CreateStaff upserts a username/password staff account with a hashed
// credential. Only table-backed deployments support it.
func (s *AuthService) CreateStaff(ctx context.Context, username, name, phone, password string) (*domain.StaffRecord, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	rec := &domain.StaffRecord{
		Identifier:   username,
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := s.staff.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStaffAccountCreated,
			Principal: rec.Identifier,
			Timestamp: time.Now(),
			Payload: events.StaffAccountCreatedPayload{
				Username:    rec.Identifier,
				Name:        rec.Name,
				Designation: rec.Designation,
			},
		})
	}
	return rec, nil
}
