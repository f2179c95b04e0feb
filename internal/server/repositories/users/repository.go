// Package users declares the persistence contract for user records.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userservice/internal/server/models"
)

// Repository defines storage operations over user records. Lookups by id and
// email return both active and soft-deleted users; only listing and counting
// filter on is_active.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update persists the mutable profile attributes (username, first/last
	// name, phone number) and refreshes updated_at.
	Update(ctx context.Context, user *models.User) (*models.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error

	// Deactivate soft-deletes the user; the row stays queryable by id/email.
	Deactivate(ctx context.Context, id string) error

	CountActive(ctx context.Context) (int64, error)

	// ListActive returns active users ordered by most-recently-created first.
	ListActive(ctx context.Context, offset, limit int) ([]*models.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameTaken reports whether another user (excluding excludeID)
	// already holds the given username.
	UsernameTaken(ctx context.Context, username, excludeID string) (bool, error)
}
