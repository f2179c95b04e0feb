// Package http exposes the account management surface as a REST API built
// on gin: registration, login, token lifecycle, profile management and the
// admin user listing.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userservice/internal/logging"
	"github.com/dmitrijs2005/userservice/internal/server/models"
	"github.com/dmitrijs2005/userservice/internal/server/services"
)

// accountSvc is the slice of the account service the HTTP surface needs.
type accountSvc interface {
	Register(ctx context.Context, params services.RegisterParams) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword, newPasswordConfirm string) error
	UpdateProfile(ctx context.Context, userID string, update services.ProfileUpdate) (*models.User, error)
	Deactivate(ctx context.Context, userID string) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// lookupSvc supplies token resolution for the auth middleware and the
// paginated listing for the admin endpoints.
type lookupSvc interface {
	CheckToken(ctx context.Context, tokenString string) (*models.User, error)
	ListActive(ctx context.Context, page, pageSize int) ([]*models.User, int64, error)
}

type HTTPServer struct {
	address string
	account accountSvc
	lookup  lookupSvc
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, as accountSvc, ls lookupSvc) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		account: as,
		lookup:  ls,
	}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
