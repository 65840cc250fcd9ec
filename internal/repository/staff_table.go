package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-portal/internal/domain"
)

// tableStaffRepository persists staff accounts in the staff_accounts table.
// These deployments authenticate by username/password, so email/phone
// resolution never matches here.
type tableStaffRepository struct {
	pool *pgxpool.Pool
}

// NewTableStaffRepository instantiates the repository.
func NewTableStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &tableStaffRepository{pool: pool}
}

func (r *tableStaffRepository) ResolveByEmailPhone(context.Context, string, string) (*domain.StaffRecord, error) {
	return nil, domain.ErrStaffNotFound
}

func (r *tableStaffRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.StaffRecord, error) {
	const query = `
        SELECT username, name, phone, designation, password_hash, created_at, updated_at
        FROM staff_accounts WHERE username=$1`

	var rec domain.StaffRecord
	if err := r.pool.QueryRow(ctx, query, identifier).Scan(
		&rec.Identifier,
		&rec.Name,
		&rec.Phone,
		&rec.Designation,
		&rec.PasswordHash,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *tableStaffRepository) Upsert(ctx context.Context, rec *domain.StaffRecord) error {
	const query = `
        INSERT INTO staff_accounts (username, name, phone, designation, password_hash)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (username) DO UPDATE
        SET name=EXCLUDED.name, phone=EXCLUDED.phone, designation=EXCLUDED.designation,
            password_hash=EXCLUDED.password_hash, updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		rec.Identifier,
		rec.Name,
		rec.Phone,
		rec.Designation,
		rec.PasswordHash,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
}
