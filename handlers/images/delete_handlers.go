package images

import (
	"errors"
	"log"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// DeleteImageSet deletes an image set and every blob it references
// @Summary Delete an image set
// @Description Deletes the set matching (title, level, category) and its stored blobs. References whose blob is already missing are logged and reported as orphaned instead of aborting the cleanup.
// @Tags Images
// @Accept json
// @Produce json
// @Param request body DeleteSetRequest true "Set identity"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /delete-arena-title [delete]
func DeleteImageSet(c *gin.Context) {
	var req DeleteSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrTitleAndLevelRequired)
		return
	}

	ctx := c.Request.Context()
	query := bson.M{
		"title":    req.Title,
		"level":    req.Level,
		"category": req.Category,
	}

	var imageSet models.ImageSet
	start := time.Now()
	err := database.ImageSets.FindOne(ctx, query).Decode(&imageSet)
	metrics.RecordDBOperation("findOne", "image_sets", start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, ErrNoSetForTitle)
		return
	}
	if err != nil {
		log.Println("Error while fetching image set for deletion: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	// Best-effort cascade: a reference whose blob is already gone must not
	// block cleanup of the remaining valid entries. Real store failures
	// still abort.
	orphaned := []string{}
	deleted := 0
	for _, label := range sortedLabels(imageSet.FileIDs) {
		entry := imageSet.FileIDs[label]

		id, err := primitive.ObjectIDFromHex(entry.ID)
		if err != nil {
			log.Printf("Image set %q holds an invalid blob id %q under %s, skipping", req.Title, entry.ID, label)
			metrics.OrphanedBlobs.Inc()
			orphaned = append(orphaned, label)
			continue
		}

		if err := database.Bucket.Delete(id); err != nil {
			if errors.Is(err, gridfs.ErrFileNotFound) {
				log.Printf("Blob %s referenced by %s of image set %q is already missing", entry.ID, label, req.Title)
				metrics.OrphanedBlobs.Inc()
				orphaned = append(orphaned, label)
				continue
			}
			log.Println("Error while deleting blob from GridFS: ", err)
			response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
			return
		}
		deleted++
	}

	start = time.Now()
	result, err := database.ImageSets.DeleteOne(ctx, query)
	metrics.RecordDBOperation("deleteOne", "image_sets", start)
	if err != nil {
		log.Println("Error while deleting image set document: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}
	if result.DeletedCount == 0 {
		response.Error(c, http.StatusInternalServerError, "Failed to delete the image set document")
		return
	}

	metrics.ImagesDeleted.Add(float64(deleted))
	database.InvalidateCache(ctx, cachePrefixPuzzle+"*")
	database.InvalidateCache(ctx, cachePrefixSets+"*")

	c.JSON(http.StatusOK, gin.H{
		"message":        `Files, chunks, and image set related to title "` + req.Title + `" have been deleted successfully.`,
		"orphaned_files": orphaned,
	})
}
