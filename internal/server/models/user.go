package models

import (
	"strings"
	"time"
)

// User is the single persistent entity of the service. Emails are stored
// lower-cased; IsActive=false marks a soft-deleted account that is excluded
// from listings and authentication but still reachable by direct lookup.
type User struct {
	ID           string
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PhoneNumber  string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// NormalizeEmail lower-cases and trims an email so it can be used as the
// case-insensitive authentication handle.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FullName returns first and last name joined with a space, falling back to
// the email when both are empty.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Email
	}
	return full
}
