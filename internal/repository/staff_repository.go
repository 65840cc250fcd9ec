package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
)

// StaffRepository resolves login attempts and looks up staff records. Exactly
// one implementation is active per deployment, selected at startup.
type StaffRepository interface {
	// ResolveByEmailPhone matches an email/phone login attempt. Backends
	// that authenticate by password return domain.ErrStaffNotFound.
	ResolveByEmailPhone(ctx context.Context, email, phone string) (*domain.StaffRecord, error)
	// GetByIdentifier fetches the record for a verified session identifier.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.StaffRecord, error)
	// Upsert inserts or replaces a record. Read-only backends return
	// domain.ErrReadOnlyBackend.
	Upsert(ctx context.Context, rec *domain.StaffRecord) error
}

// NewStaffBackend selects the staff backend from configuration: account
// table when postgres is connected, else the directory file, else the fixed
// credential pair, else a disabled stand-in.
func NewStaffBackend(cfg config.StaffConfig, pool *pgxpool.Pool, logger *zap.Logger) StaffRepository {
	if pool != nil {
		logger.Info("staff backend: account table")
		return NewTableStaffRepository(pool)
	}
	if cfg.DirectoryPath != "" {
		repo, err := NewDirectoryStaffRepository(cfg.DirectoryPath, cfg.CountryCode)
		if err != nil {
			logger.Error("staff directory unreadable; staff login disabled",
				zap.String("path", cfg.DirectoryPath), zap.Error(err))
			return disabledStaffRepository{}
		}
		logger.Info("staff backend: directory file", zap.String("path", cfg.DirectoryPath))
		return repo
	}
	if cfg.FixedEmail != "" && cfg.FixedPhone != "" {
		logger.Info("staff backend: fixed credentials")
		return NewFixedStaffRepository(cfg)
	}
	logger.Warn("no staff backend configured; staff login disabled")
	return disabledStaffRepository{}
}

type disabledStaffRepository struct{}

func (disabledStaffRepository) ResolveByEmailPhone(context.Context, string, string) (*domain.StaffRecord, error) {
	return nil, domain.ErrStaffNotFound
}

func (disabledStaffRepository) GetByIdentifier(context.Context, string) (*domain.StaffRecord, error) {
	return nil, domain.ErrStaffNotFound
}

func (disabledStaffRepository) Upsert(context.Context, *domain.StaffRecord) error {
	return domain.ErrReadOnlyBackend
}
