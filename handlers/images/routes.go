package images

import (
	"api/config"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to puzzle images
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Uploads move whole files into the blob store, throttle them harder
	uploadRateLimiter := middleware.NewRateLimiter(config.UploadRateLimit.Rate, config.UploadRateLimit.Burst)

	r.POST("/upload", middleware.RateLimiterMiddleware(uploadRateLimiter), UploadImages)
	r.POST("/updatelivepuzzle", UpdateLivePuzzle)
	r.GET("/getpuzzleid", GetPuzzle)
	r.PUT("/get_puzzle_sol", UpdatePuzzleSolution)
	r.GET("/images/title", GetImagesByTitle)
	r.GET("/imagesets", GetImageSets)
	r.GET("/images/solutions", GetImagesBySolutions)
	r.GET("/get_level", GetLevelImages)
	r.POST("/image_get_fileid", GetImageByFileID)
	r.GET("/image/:id", GetImage)
	r.DELETE("/delete-arena-title", DeleteImageSet)
}
