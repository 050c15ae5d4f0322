package routes

import (
	"net/http"

	"api/config"
	"api/handlers/images"
	"api/handlers/tournaments"
	"api/handlers/users"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register registers all API endpoints. The front-end was written against
// root-level paths, so no version prefix is added.
func Register(r *gin.Engine) {
	root := r.Group("/")

	// Add metrics middleware to all routes
	root.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimit.Rate, config.DefaultRateLimit.Burst)
	root.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(root)
	users.RegisterRoutes(root)
	tournaments.RegisterRoutes(root)
	images.RegisterRoutes(root)

	// Register metrics endpoint
	RegisterMetricsRoutes(root)
}

// RegisterPingRoutes registers the health-check endpoint
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Chess club API is running")
	})
}
