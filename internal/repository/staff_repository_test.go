package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
	"github.com/spec-kit/staff-portal/internal/repository"
)

func writeDirectory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staff.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDirectoryStaffRepository_PhoneEquivalence(t *testing.T) {
	path := writeDirectory(t, `[
		{"email":"maya@college.edu","name":"Maya","phone":"+919876543210","designation":"Coordinator"},
		{"email":"ravi@college.edu","name":"Ravi","phone":"98-765-11111"}
	]`)
	repo, err := repository.NewDirectoryStaffRepository(path, "+91")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("exact match", func(t *testing.T) {
		rec, err := repo.ResolveByEmailPhone(ctx, "maya@college.edu", "+919876543210")
		require.NoError(t, err)
		require.Equal(t, "Maya", rec.Name)
	})

	t.Run("country code prefix match", func(t *testing.T) {
		rec, err := repo.ResolveByEmailPhone(ctx, "maya@college.edu", "9876543210")
		require.NoError(t, err)
		require.Equal(t, "maya@college.edu", rec.Identifier)
	})

	t.Run("digits-only match", func(t *testing.T) {
		rec, err := repo.ResolveByEmailPhone(ctx, "ravi@college.edu", "9876511111")
		require.NoError(t, err)
		require.Equal(t, "Ravi", rec.Name)
	})

	t.Run("wrong phone", func(t *testing.T) {
		_, err := repo.ResolveByEmailPhone(ctx, "maya@college.edu", "1234567890")
		require.ErrorIs(t, err, domain.ErrStaffNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.ResolveByEmailPhone(ctx, "nobody@college.edu", "9876543210")
		require.ErrorIs(t, err, domain.ErrStaffNotFound)
	})

	t.Run("lookup by identifier", func(t *testing.T) {
		rec, err := repo.GetByIdentifier(ctx, "ravi@college.edu")
		require.NoError(t, err)
		require.Equal(t, "Ravi", rec.Name)
	})

	t.Run("directory is read-only", func(t *testing.T) {
		err := repo.Upsert(ctx, &domain.StaffRecord{Identifier: "new@college.edu"})
		require.ErrorIs(t, err, domain.ErrReadOnlyBackend)
	})
}

func TestDirectoryStaffRepository_BadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := repository.NewDirectoryStaffRepository(filepath.Join(t.TempDir(), "none.json"), "+91")
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeDirectory(t, "{not json")
		_, err := repository.NewDirectoryStaffRepository(path, "+91")
		require.Error(t, err)
	})
}

func TestFixedStaffRepository(t *testing.T) {
	cfg := config.StaffConfig{
		FixedEmail:       "maya@college.edu",
		FixedName:        "Maya",
		FixedPhone:       "9876543210",
		FixedDesignation: "Coordinator",
	}
	repo := repository.NewFixedStaffRepository(cfg)
	ctx := context.Background()

	t.Run("both fields must match", func(t *testing.T) {
		rec, err := repo.ResolveByEmailPhone(ctx, "maya@college.edu", "9876543210")
		require.NoError(t, err)
		require.Equal(t, "Coordinator", rec.Designation)

		_, err = repo.ResolveByEmailPhone(ctx, "maya@college.edu", "000")
		require.ErrorIs(t, err, domain.ErrStaffNotFound)

		_, err = repo.ResolveByEmailPhone(ctx, "other@college.edu", "9876543210")
		require.ErrorIs(t, err, domain.ErrStaffNotFound)
	})

	t.Run("read-only", func(t *testing.T) {
		err := repo.Upsert(ctx, &domain.StaffRecord{Identifier: "x"})
		require.ErrorIs(t, err, domain.ErrReadOnlyBackend)
	})
}

func TestNewStaffBackend_Selection(t *testing.T) {
	logger := zap.NewNop()

	t.Run("directory preferred over fixed", func(t *testing.T) {
		path := writeDirectory(t, `[{"email":"a@b.c","name":"A","phone":"1"}]`)
		repo := repository.NewStaffBackend(config.StaffConfig{
			DirectoryPath: path,
			FixedEmail:    "maya@college.edu",
			FixedPhone:    "9876543210",
			CountryCode:   "+91",
		}, nil, logger)

		rec, err := repo.GetByIdentifier(context.Background(), "a@b.c")
		require.NoError(t, err)
		require.Equal(t, "A", rec.Name)
	})

	t.Run("nothing configured disables login", func(t *testing.T) {
		repo := repository.NewStaffBackend(config.StaffConfig{}, nil, logger)

		_, err := repo.ResolveByEmailPhone(context.Background(), "a@b.c", "1")
		require.ErrorIs(t, err, domain.ErrStaffNotFound)
		require.ErrorIs(t, repo.Upsert(context.Background(), &domain.StaffRecord{}), domain.ErrReadOnlyBackend)
	})

	t.Run("unreadable directory disables login", func(t *testing.T) {
		repo := repository.NewStaffBackend(config.StaffConfig{
			DirectoryPath: filepath.Join(t.TempDir(), "missing.json"),
		}, nil, logger)

		_, err := repo.GetByIdentifier(context.Background(), "a@b.c")
		require.ErrorIs(t, err, domain.ErrStaffNotFound)
	})
}
