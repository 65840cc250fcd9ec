package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/staff-portal/internal/auth"
	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/events"
	"github.com/spec-kit/staff-portal/internal/service"
)

// fakeStaffRepo is an in-memory StaffRepository for service tests.
type fakeStaffRepo struct {
	records  map[string]domain.StaffRecord
	readOnly bool
}

func (f *fakeStaffRepo) ResolveByEmailPhone(_ context.Context, email, phone string) (*domain.StaffRecord, error) {
	rec, ok := f.records[email]
	if !ok || rec.Phone != phone {
		return nil, domain.ErrStaffNotFound
	}
	return &rec, nil
}

func (f *fakeStaffRepo) GetByIdentifier(_ context.Context, identifier string) (*domain.StaffRecord, error) {
	rec, ok := f.records[identifier]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	return &rec, nil
}

func (f *fakeStaffRepo) Upsert(_ context.Context, rec *domain.StaffRecord) error {
	if f.readOnly {
		return domain.ErrReadOnlyBackend
	}
	f.records[rec.Identifier] = *rec
	return nil
}

func newAuthService(t *testing.T, repo *fakeStaffRepo, dispatcher events.Dispatcher) *service.AuthService {
	t.Helper()
	return service.NewAuthService(config.AuthConfig{
		AdminPassword: "admin-secret",
		BcryptCost:    bcrypt.MinCost,
	}, service.AuthDependencies{
		StaffRepo:  repo,
		Sessions:   auth.NewSessionManager("test-secret", time.Hour),
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
}

func TestAuthService_LoginStaff_Password(t *testing.T) {
	hash, err := auth.HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeStaffRepo{records: map[string]domain.StaffRecord{
		"msharma":  {Identifier: "msharma", Name: "Maya", PasswordHash: hash},
		"hashless": {Identifier: "hashless", Name: "No Hash"},
	}}
	svc := newAuthService(t, repo, nil)
	ctx := context.Background()

	t.Run("valid credentials issue a session", func(t *testing.T) {
		rec, token, exp, err := svc.LoginStaff(ctx, service.StaffLogin{Username: "msharma", Password: "correct horse"})
		require.NoError(t, err)
		require.Equal(t, "Maya", rec.Name)
		require.NotEmpty(t, token)
		require.True(t, exp.After(time.Now()))
	})

	// wrong password, unknown username, and a record without a stored hash
	// must be indistinguishable to the caller
	t.Run("failures collapse to one error", func(t *testing.T) {
		for _, input := range []service.StaffLogin{
			{Username: "msharma", Password: "wrong"},
			{Username: "ghost", Password: "correct horse"},
			{Username: "hashless", Password: "anything"},
			{Username: "msharma"},
			{Password: "correct horse"},
		} {
			_, _, _, err := svc.LoginStaff(ctx, input)
			require.ErrorIs(t, err, service.ErrInvalidCredentials)
		}
	})
}

func TestAuthService_LoginStaff_EmailPhone(t *testing.T) {
	repo := &fakeStaffRepo{records: map[string]domain.StaffRecord{
		"maya@college.edu": {Identifier: "maya@college.edu", Name: "Maya", Phone: "9876543210"},
	}}
	svc := newAuthService(t, repo, nil)
	ctx := context.Background()

	rec, token, _, err := svc.LoginStaff(ctx, service.StaffLogin{Email: "maya@college.edu", Phone: "9876543210"})
	require.NoError(t, err)
	require.Equal(t, "maya@college.edu", rec.Identifier)
	require.NotEmpty(t, token)

	_, _, _, err = svc.LoginStaff(ctx, service.StaffLogin{Email: "maya@college.edu", Phone: "0"})
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, _, err = svc.LoginStaff(ctx, service.StaffLogin{Email: "maya@college.edu"})
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	svc := newAuthService(t, &fakeStaffRepo{records: map[string]domain.StaffRecord{}}, nil)
	ctx := context.Background()

	t.Run("correct secret", func(t *testing.T) {
		token, _, err := svc.LoginAdmin(ctx, "admin-secret")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, _, err := svc.LoginAdmin(ctx, "nope")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unconfigured secret disables admin login", func(t *testing.T) {
		disabled := service.NewAuthService(config.AuthConfig{BcryptCost: bcrypt.MinCost}, service.AuthDependencies{
			StaffRepo: &fakeStaffRepo{records: map[string]domain.StaffRecord{}},
			Sessions:  auth.NewSessionManager("test-secret", time.Hour),
			Logger:    zap.NewNop(),
		})
		_, _, err := disabled.LoginAdmin(ctx, "")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_CreateStaff(t *testing.T) {
	repo := &fakeStaffRepo{records: map[string]domain.StaffRecord{}}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventStaffAccountCreated, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	svc := newAuthService(t, repo, dispatcher)
	ctx := context.Background()

	rec, err := svc.CreateStaff(ctx, "msharma", "Maya", "9876543210", "correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", rec.PasswordHash)
	require.NoError(t, auth.ComparePassword(rec.PasswordHash, "correct horse"))

	require.Len(t, published, 1)
	require.Equal(t, "msharma", published[0].Principal)

	t.Run("upsert replaces the stored credential", func(t *testing.T) {
		_, err := svc.CreateStaff(ctx, "msharma", "Maya S", "9876543210", "new password")
		require.NoError(t, err)

		_, _, _, err = svc.LoginStaff(ctx, service.StaffLogin{Username: "msharma", Password: "correct horse"})
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
		loggedIn, _, _, err := svc.LoginStaff(ctx, service.StaffLogin{Username: "msharma", Password: "new password"})
		require.NoError(t, err)
		require.Equal(t, "Maya S", loggedIn.Name)
	})

	t.Run("read-only backend rejects creation", func(t *testing.T) {
		readOnly := newAuthService(t, &fakeStaffRepo{records: map[string]domain.StaffRecord{}, readOnly: true}, nil)
		_, err := readOnly.CreateStaff(ctx, "x", "X", "", "pw")
		require.ErrorIs(t, err, domain.ErrReadOnlyBackend)
	})
}
