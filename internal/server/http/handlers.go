package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/userservice/internal/common"
	"github.com/dmitrijs2005/userservice/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "user-service",
	})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := s.account.Register(c.Request.Context(), services.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match."})
		case errors.Is(err, common.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with this email already exists."})
		default:
			s.internalError(c, err)
		}
		return
	}

	s.logger.Info(c.Request.Context(), "User registered", "email", user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user":    toUserJSON(user),
		"tokens":  tokensJSON{Access: tokens.AccessToken, Refresh: tokens.RefreshToken},
	})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := s.account.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
		case errors.Is(err, common.ErrUserDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User account is disabled."})
		default:
			s.internalError(c, err)
		}
		return
	}

	s.logger.Info(c.Request.Context(), "User logged in", "email", user.Email)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"user":    toUserJSON(user),
		"tokens":  tokensJSON{Access: tokens.AccessToken, Refresh: tokens.RefreshToken},
	})
}

func (s *HTTPServer) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := s.account.RefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken),
			errors.Is(err, common.ErrTokenExpired),
			errors.Is(err, common.ErrTokenRevoked):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired."})
		case errors.Is(err, common.ErrUserDisabled):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User account is disabled."})
		default:
			s.internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, tokensJSON{Access: tokens.AccessToken, Refresh: tokens.RefreshToken})
}

func (s *HTTPServer) logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.account.Logout(c.Request.Context(), req.Refresh); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
		default:
			s.internalError(c, err)
		}
		return
	}

	s.logger.Info(c.Request.Context(), "User logged out", "email", currentUser(c).Email)

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful."})
}

func (s *HTTPServer) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, toUserJSON(currentUser(c)))
}

func (s *HTTPServer) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.account.UpdateProfile(c.Request.Context(), currentUser(c).ID, services.ProfileUpdate{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This username is already taken."})
		default:
			s.internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, toUserJSON(user))
}

func (s *HTTPServer) deactivate(c *gin.Context) {
	user := currentUser(c)

	if err := s.account.Deactivate(c.Request.Context(), user.ID); err != nil {
		s.internalError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "User deactivated", "email", user.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Account deactivated successfully."})
}

func (s *HTTPServer) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	err := s.account.ChangePassword(c.Request.Context(), user.ID, req.OldPassword, req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Old password is incorrect."})
		case errors.Is(err, common.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New passwords do not match."})
		default:
			s.internalError(c, err)
		}
		return
	}

	s.logger.Info(c.Request.Context(), "Password changed", "email", user.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully."})
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	page := intQuery(c, "page", 0)
	pageSize := intQuery(c, "page_size", 0)

	users, total, err := s.lookup.ListActive(c.Request.Context(), page, pageSize)
	if err != nil {
		s.internalError(c, err)
		return
	}

	results := make([]userJSON, 0, len(users))
	for _, u := range users {
		results = append(results, toUserJSON(u))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func (s *HTTPServer) getUser(c *gin.Context) {
	user, err := s.account.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserJSON(user))
}

// intQuery parses an integer query parameter, falling back to def on
// absence or garbage. Range normalization happens in the service.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func (s *HTTPServer) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
