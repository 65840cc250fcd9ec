package domain

import "time"

// StaffRecord models one staff member. Identifier is the partition key: the
// email address for email/phone deployments, the username for table-backed
// deployments.
type StaffRecord struct {
	Identifier   string
	Name         string
	Phone        string
	Designation  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
