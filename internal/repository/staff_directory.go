package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spec-kit/staff-portal/internal/domain"
)

// directoryRecord is the on-disk shape of one staff directory entry.
type directoryRecord struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Designation string `json:"designation,omitempty"`
}

// directoryStaffRepository serves a read-only JSON list of staff records
// loaded once at startup. Email is matched exactly; the phone is matched
// under three equivalence rules tried in order: exact, country-code-prefixed
// input, digits-only comparison.
type directoryStaffRepository struct {
	byEmail     map[string]domain.StaffRecord
	countryCode string
}

// NewDirectoryStaffRepository loads the directory file.
func NewDirectoryStaffRepository(path, countryCode string) (StaffRepository, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read staff directory: %w", err)
	}

	var records []directoryRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse staff directory: %w", err)
	}

	byEmail := make(map[string]domain.StaffRecord, len(records))
	for _, rec := range records {
		if rec.Email == "" {
			continue
		}
		byEmail[rec.Email] = domain.StaffRecord{
			Identifier:  rec.Email,
			Name:        rec.Name,
			Phone:       rec.Phone,
			Designation: rec.Designation,
		}
	}

	return &directoryStaffRepository{byEmail: byEmail, countryCode: countryCode}, nil
}

func (r *directoryStaffRepository) ResolveByEmailPhone(_ context.Context, email, phone string) (*domain.StaffRecord, error) {
	rec, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	if !phoneMatches(rec.Phone, phone, r.countryCode) {
		return nil, domain.ErrStaffNotFound
	}
	return &rec, nil
}

func (r *directoryStaffRepository) GetByIdentifier(_ context.Context, identifier string) (*domain.StaffRecord, error) {
	rec, ok := r.byEmail[identifier]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	return &rec, nil
}

func (r *directoryStaffRepository) Upsert(context.Context, *domain.StaffRecord) error {
	return domain.ErrReadOnlyBackend
}

// phoneMatches tries the three phone equivalence rules in order; the first
// rule that matches wins.
func phoneMatches(stored, input, countryCode string) bool {
	if stored == input {
		return true
	}
	if stored == countryCode+input {
		return true
	}
	return digitsOnly(stored) == digitsOnly(input) && digitsOnly(input) != ""
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
