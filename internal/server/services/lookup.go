package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/userservice/internal/common"
	"github.com/dmitrijs2005/userservice/internal/server/auth"
	"github.com/dmitrijs2005/userservice/internal/server/config"
	"github.com/dmitrijs2005/userservice/internal/server/models"
	"github.com/dmitrijs2005/userservice/internal/server/repositories/repomanager"
)

// Pagination bounds for ListActive. Values outside the range are normalized
// rather than rejected.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// LookupService is the read-only query surface consumed by other services.
// None of its operations mutate state, so every call is safe to retry and to
// serve concurrently.
type LookupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
}

// NewLookupService constructs a LookupService using repositories and server config.
func NewLookupService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *LookupService {
	return &LookupService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
	}
}

// UserByID returns the user with the given id, active or not.
func (s *LookupService) UserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// UserByEmail returns the user with the given email, matched
// case-insensitively, active or not.
func (s *LookupService) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, models.NormalizeEmail(email))
}

// CheckToken verifies an access token's signature, expiry and type, then
// resolves the embedded user. It returns:
//   - ErrInvalidToken / ErrTokenExpired when verification fails,
//   - ErrInvalidToken when the token is not an access token,
//   - ErrorNotFound when the user no longer exists,
//   - ErrUserDisabled when the user was deactivated after issuance.
//
// Refresh tokens must never authenticate requests: they are revocable and
// logout only blacklists the refresh jti, so accepting one here would keep
// a revoked credential alive until natural expiry.
func (s *LookupService) CheckToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != auth.TokenTypeAccess {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, common.ErrUserDisabled
	}

	return user, nil
}

// ListActive returns one page of active users, most-recently-created first,
// together with the total count of active users. page defaults to 1 when
// non-positive; pageSize defaults to 20 and is clamped to 100.
func (s *LookupService) ListActive(ctx context.Context, page, pageSize int) ([]*models.User, int64, error) {
	page, pageSize = NormalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	repo := s.repomanager.Users(s.db)

	users, err := repo.ListActive(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := repo.CountActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// NormalizePage applies the pagination defaults and the page size clamp.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
