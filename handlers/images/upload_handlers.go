package images

import (
	"log"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UploadImages stores uploaded puzzle images and merges them into an image set
// @Summary Upload puzzle images
// @Description Stores each file in the blob store and attaches it under the puzzle label inside the image set matching the full (title, level, category, live, live_link, date_time) key, creating the set when none matches. All files in one call share the same label, so the last one wins.
// @Tags Images
// @Accept mpfd
// @Produce json
// @Param images formData file true "Puzzle image files"
// @Param title formData string true "Set title"
// @Param level formData string true "Player level"
// @Param category formData string true "Puzzle category"
// @Param live formData string true "Live flag"
// @Param date_time formData string true "Set date and time"
// @Param live_link formData string false "Broadcast link"
// @Param puzzle_number formData string false "Puzzle number, defaults to 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload [post]
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrMissingRequiredFields)
		return
	}

	title := c.PostForm("title")
	level := c.PostForm("level")
	category := c.PostForm("category")
	live := c.PostForm("live")
	dateTime := c.PostForm("date_time")
	liveLink := c.DefaultPostForm("live_link", "")
	puzzleNumber := c.DefaultPostForm("puzzle_number", "1")

	if title == "" || level == "" || category == "" || live == "" || dateTime == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingRequiredFields)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, ErrNoFilesUploaded)
		return
	}

	// Every file in one call shares the same label: colliding entries are
	// overwritten and only the last blob's entry survives the merge.
	puzzleKey := services.PuzzleKey(puzzleNumber)
	fileIDs := map[string]models.PuzzleEntry{}
	for _, file := range files {
		id, err := services.StoreImage(file)
		if err != nil {
			log.Println("Error while storing image in GridFS: ", err)
			response.Error(c, http.StatusInternalServerError, ErrUploadFailed)
			return
		}
		fileIDs[puzzleKey] = models.PuzzleEntry{
			ID:   id.Hex(),
			Move: models.DefaultMove,
		}
	}

	// A single upsert keyed on the full 6-field identity merges the new
	// entries into an existing set or inserts a new one atomically, so
	// concurrent uploads to the same key cannot create duplicate sets.
	filter := services.SetKeyFilter(models.ImageSetKey{
		Title:    title,
		Level:    level,
		Category: category,
		Live:     live,
		LiveLink: liveLink,
		DateTime: dateTime,
	})

	start := time.Now()
	_, err = database.ImageSets.UpdateOne(
		c.Request.Context(),
		filter,
		services.PuzzleEntriesUpdate(fileIDs),
		options.Update().SetUpsert(true),
	)
	metrics.RecordDBOperation("upsert", "image_sets", start)
	if err != nil {
		log.Println("Error while upserting image set: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	metrics.ImagesUploaded.Add(float64(len(files)))
	database.InvalidateCache(c.Request.Context(), cachePrefixPuzzle+"*")
	database.InvalidateCache(c.Request.Context(), cachePrefixSets+"*")

	c.JSON(http.StatusOK, gin.H{
		"message":  "Images uploaded successfully",
		"file_ids": fileIDs,
	})
}
