package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRouter configures the route tree. Endpoint layout mirrors the
// service's public API:
//
//	/api/health                  public
//	/api/auth/...                registration and token lifecycle
//	/api/users/me...             profile, behind authRequired
//	/api/users...                admin listing, behind adminRequired
func (s *HTTPServer) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")

	api.GET("/health", s.healthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.POST("/refresh", s.refresh)
		auth.POST("/logout", s.authRequired(), s.logout)
	}

	me := api.Group("/users/me", s.authRequired())
	{
		me.GET("", s.getProfile)
		me.PUT("", s.updateProfile)
		me.PATCH("", s.updateProfile)
		me.DELETE("", s.deactivate)
		me.POST("/password", s.changePassword)
	}

	admin := api.Group("/users", s.authRequired(), s.adminRequired())
	{
		admin.GET("", s.listUsers)
		admin.GET("/:id", s.getUser)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}
