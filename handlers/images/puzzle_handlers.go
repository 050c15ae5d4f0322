package images

import (
	"errors"
	"log"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateLivePuzzle updates the live flag and broadcast link of an image set
// @Summary Update live broadcast fields
// @Description Updates live and/or live_link on the set matching (level, category, title). A match that changes nothing is reported as a failure.
// @Tags Images
// @Accept json
// @Produce json
// @Param request body UpdateLiveRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /updatelivepuzzle [post]
func UpdateLivePuzzle(c *gin.Context) {
	var req UpdateLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrMissingParameters)
		return
	}

	update := bson.M{}
	if req.Live != nil {
		update["live"] = *req.Live
	}
	if req.LiveLink != nil {
		update["live_link"] = *req.LiveLink
	}
	if len(update) == 0 {
		response.Error(c, http.StatusBadRequest, ErrNoUpdateParameters)
		return
	}

	query := bson.M{
		"level":    req.Level,
		"category": req.Category,
		"title":    req.Title,
	}

	start := time.Now()
	result, err := database.ImageSets.UpdateOne(c.Request.Context(), query, bson.M{"$set": update})
	metrics.RecordDBOperation("updateOne", "image_sets", start)
	if err != nil {
		log.Println("Error while updating live puzzle: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	if result.MatchedCount == 0 {
		response.Error(c, http.StatusNotFound, ErrNoMatchingDocument)
		return
	}
	if result.ModifiedCount == 0 {
		// A matched document that did not change is surfaced as an error,
		// matching what the front-end expects.
		response.Error(c, http.StatusInternalServerError, ErrDocumentNotUpdated)
		return
	}

	database.InvalidateCache(c.Request.Context(), cachePrefixPuzzle+"*")
	database.InvalidateCache(c.Request.Context(), cachePrefixSets+"*")

	c.JSON(http.StatusOK, gin.H{
		"message":        "Document updated successfully",
		"updated_fields": update,
	})
}

// GetPuzzle returns one puzzle entry of an image set
// @Summary Get a single puzzle
// @Description Returns the image set's scalar fields plus exactly the requested puzzle entry. An absent entry resolves to empty fields, not an error.
// @Tags Images
// @Produce json
// @Param level query string true "Player level"
// @Param category query string true "Puzzle category"
// @Param title query string true "Set title"
// @Param live query string true "Live flag"
// @Param puzzle_number query string true "Puzzle number"
// @Success 200 {object} PuzzleProjection
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /getpuzzleid [get]
func GetPuzzle(c *gin.Context) {
	level := c.Query("level")
	category := c.Query("category")
	title := c.Query("title")
	live := c.Query("live")
	puzzleNumber := c.Query("puzzle_number")

	if level == "" || category == "" || title == "" || live == "" || puzzleNumber == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingParameters)
		return
	}

	ctx := c.Request.Context()
	cacheKey := cachePrefixPuzzle + level + ":" + category + ":" + title + ":" + live + ":" + puzzleNumber

	// Try to get the puzzle projection from cache first
	var cached PuzzleProjection
	if found, _ := database.GetFromCache(ctx, cacheKey, &cached); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	var imageSet models.ImageSet
	start := time.Now()
	err := database.ImageSets.FindOne(ctx, bson.M{
		"level":    level,
		"category": category,
		"title":    title,
		"live":     live,
	}).Decode(&imageSet)
	metrics.RecordDBOperation("findOne", "image_sets", start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, ErrImageSetNotFound)
		return
	}
	if err != nil {
		log.Println("Error while fetching puzzle: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	// An absent entry yields the zero value: empty-string fields, not an error
	puzzleKey := services.PuzzleKey(puzzleNumber)
	entry := imageSet.FileIDs[puzzleKey]

	projection := PuzzleProjection{
		Level:    imageSet.Level,
		Category: imageSet.Category,
		Title:    imageSet.Title,
		Live:     imageSet.Live,
		DateTime: imageSet.DateTime,
		LiveLink: imageSet.LiveLink,
		FileIDs:  map[string]models.PuzzleEntry{puzzleKey: entry},
	}

	_ = database.SetToCache(ctx, cacheKey, projection)

	c.JSON(http.StatusOK, projection)
}

// UpdatePuzzleSolution sets the move/solution/link metadata of one puzzle
// @Summary Update a puzzle's solution metadata
// @Description Sets move, sid_link and solution on the labeled puzzle plus the set's live_link, unconditionally: omitted optional fields are written as empty strings.
// @Tags Images
// @Accept json
// @Produce json
// @Param request body UpdateSolutionRequest true "Solution fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /get_puzzle_sol [put]
func UpdatePuzzleSolution(c *gin.Context) {
	var req UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrMissingRequiredFields)
		return
	}

	// The label is spliced into a dotted update path, reject anything that
	// is not a plain puzzle label
	if !services.ValidPuzzleLabel(req.ColumnName) {
		response.Error(c, http.StatusBadRequest, ErrInvalidPuzzleLabel)
		return
	}

	query := bson.M{
		"title":    req.Title,
		"level":    req.Level,
		"category": req.Category,
		"live":     req.Live,
	}
	update := services.PuzzleSolutionUpdate(req.ColumnName, req.Move, req.SidLink, req.Solution, req.LiveLink)

	start := time.Now()
	result, err := database.ImageSets.UpdateOne(c.Request.Context(), query, update)
	metrics.RecordDBOperation("updateOne", "image_sets", start)
	if err != nil {
		log.Println("Error while updating puzzle solution: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	if result.MatchedCount == 0 {
		response.Error(c, http.StatusNotFound, ErrNoMatchingDocument)
		return
	}

	database.InvalidateCache(c.Request.Context(), cachePrefixPuzzle+"*")
	database.InvalidateCache(c.Request.Context(), cachePrefixSets+"*")

	response.Message(c, http.StatusOK, "Puzzle updated successfully")
}
