package tournaments

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to tournaments
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/tournaments", CreateTournament)
	r.GET("/tournaments", GetTournaments)
	r.GET("/tournaments/:id", GetTournament)
	r.PUT("/tournaments/:id", UpdateTournament)
	r.DELETE("/tournaments/:id", DeleteTournament)
	r.PUT("/update-tournament", UpdateTournamentByType)
}
