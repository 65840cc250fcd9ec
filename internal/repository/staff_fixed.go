package repository

import (
	"context"

	"github.com/spec-kit/staff-portal/internal/config"
	"github.com/spec-kit/staff-portal/internal/domain"
)

// fixedStaffRepository serves the single staff account configured through
// environment values. Both login fields must match exactly.
type fixedStaffRepository struct {
	record domain.StaffRecord
}

// NewFixedStaffRepository builds the fixed-credential backend.
func NewFixedStaffRepository(cfg config.StaffConfig) StaffRepository {
	return &fixedStaffRepository{record: domain.StaffRecord{
		Identifier:  cfg.FixedEmail,
		Name:        cfg.FixedName,
		Phone:       cfg.FixedPhone,
		Designation: cfg.FixedDesignation,
	}}
}

func (r *fixedStaffRepository) ResolveByEmailPhone(_ context.Context, email, phone string) (*domain.StaffRecord, error) {
	if email != r.record.Identifier || phone != r.record.Phone {
		return nil, domain.ErrStaffNotFound
	}
	rec := r.record
	return &rec, nil
}

func (r *fixedStaffRepository) GetByIdentifier(_ context.Context, identifier string) (*domain.StaffRecord, error) {
	if identifier != r.record.Identifier {
		return nil, domain.ErrStaffNotFound
	}
	rec := r.record
	return &rec, nil
}

func (r *fixedStaffRepository) Upsert(context.Context, *domain.StaffRecord) error {
	return domain.ErrReadOnlyBackend
}
