// Package services contains server-side business logic. This file implements
// AccountService, which handles registration, authentication, token
// rotation/revocation, and profile mutation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userservice/internal/common"
	"github.com/dmitrijs2005/userservice/internal/dbx"
	"github.com/dmitrijs2005/userservice/internal/server/auth"
	"github.com/dmitrijs2005/userservice/internal/server/config"
	"github.com/dmitrijs2005/userservice/internal/server/models"
	"github.com/dmitrijs2005/userservice/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterParams carries validated registration input. Email is normalized
// by the service; Password and PasswordConfirm must match.
type RegisterParams struct {
	Email           string
	Password        string
	PasswordConfirm string
	Username        string
	FirstName       string
	LastName        string
	PhoneNumber     string
}

// ProfileUpdate carries a partial profile mutation; nil fields stay unchanged.
type ProfileUpdate struct {
	Username    *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// AccountService provides account lifecycle operations:
//   - Register / Login / Logout / RefreshToken
//   - ChangePassword, UpdateProfile, Deactivate
//
// Validation failures are reported as sentinel errors from internal/common
// so transports can map them without string matching.
type AccountService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
}

// NewAccountService constructs an AccountService using repositories and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
	}
}

// Register creates a new active user and issues an initial token pair.
// Returns ErrPasswordMismatch or ErrEmailAlreadyExists on validation failure.
func (s *AccountService) Register(ctx context.Context, params RegisterParams) (*models.User, *TokenPair, error) {
	if params.Password != params.PasswordConfirm {
		return nil, nil, common.ErrPasswordMismatch
	}

	email := models.NormalizeEmail(params.Email)
	repo := s.repomanager.Users(s.db)

	exists, err := repo.EmailExists(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("error checking email uniqueness: %w", err)
	}
	if exists {
		return nil, nil, common.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     params.Username,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PhoneNumber:  params.PhoneNumber,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	pair, err := s.generateTokenPair(user.ID)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, pair, nil
}

// Login verifies credentials and, on success, records last_login_at and
// returns the user with a fresh token pair. Unknown emails and wrong
// passwords both yield ErrorUnauthorized; disabled accounts yield
// ErrUserDisabled.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	if !user.IsActive {
		return nil, nil, common.ErrUserDisabled
	}

	pair, err := s.generateTokenPair(user.ID)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	now := time.Now()
	if err := repo.SetLastLogin(ctx, user.ID, now); err != nil {
		return nil, nil, common.ErrorInternal
	}
	user.LastLoginAt = &now

	return user, pair, nil
}

// Logout revokes a refresh token by blacklisting its jti until natural
// expiry. Access tokens stay stateless and simply age out.
func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	repo := s.repomanager.RevokedTokens(s.db)
	revoked := &models.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := repo.Add(ctx, revoked); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// RefreshToken validates a refresh token, rotates it transactionally
// (old jti blacklisted, new pair issued), and returns the fresh TokenPair.
// Revoked tokens yield ErrTokenRevoked; tokens of deactivated or deleted
// users are rejected.
func (s *AccountService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.repomanager.RevokedTokens(s.db).IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}
	if !user.IsActive {
		return nil, common.ErrUserDisabled
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RevokedTokens(tx)
		revoked := &models.RevokedToken{
			JTI:       claims.ID,
			UserID:    claims.UserID,
			ExpiresAt: claims.ExpiresAt.Time,
		}
		if err := repoTx.Add(ctx, revoked); err != nil {
			return fmt.Errorf("error revoking refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(claims.UserID)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (s *AccountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, newPasswordConfirm string) error {
	if newPassword != newPasswordConfirm {
		return common.ErrPasswordMismatch
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return common.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return common.ErrorInternal
	}

	if err := repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// UpdateProfile applies a partial profile mutation. A username change is
// rejected with ErrUsernameTaken when another user already holds it.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if update.Username != nil && *update.Username != "" && *update.Username != user.Username {
		taken, err := repo.UsernameTaken(ctx, *update.Username, userID)
		if err != nil {
			return nil, common.ErrorInternal
		}
		if taken {
			return nil, common.ErrUsernameTaken
		}
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}

	user, err = repo.Update(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Deactivate soft-deletes the account. The record stays queryable by direct
// id/email lookup; listings and authentication exclude it.
func (s *AccountService) Deactivate(ctx context.Context, userID string) error {
	if err := s.repomanager.Users(s.db).Deactivate(ctx, userID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// GetByID returns the user regardless of is_active.
func (s *AccountService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// --- helpers below ---

func (s *AccountService) parseRefreshToken(tokenString string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

func (s *AccountService) generateTokenPair(userID string) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, auth.TokenTypeAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateToken(userID, auth.TokenTypeRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
