// Package revokedtokens declares the server-side contract for the refresh
// token blacklist. Revoked tokens are recorded by jti until natural expiry.
package revokedtokens

import (
	"context"

	"github.com/dmitrijs2005/userservice/internal/server/models"
)

// Repository defines operations for recording and checking revoked refresh tokens.
type Repository interface {
	// Add records a revoked refresh token. Revoking an already revoked
	// token is not an error.
	Add(ctx context.Context, token *models.RevokedToken) error

	// IsRevoked reports whether the given jti has been blacklisted.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// PurgeExpired removes blacklist rows whose tokens have expired anyway
	// and returns the number of rows removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
