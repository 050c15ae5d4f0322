package images

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sortedLabels returns the puzzle labels of a file_ids mapping in a stable order
func sortedLabels(fileIDs map[string]models.PuzzleEntry) []string {
	labels := make([]string, 0, len(fileIDs))
	for label := range fileIDs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// GetImagesByTitle lists the stored images of one image set
// @Summary List images by title
// @Description Returns id, filename and URL for every image in the set matching (title, level, category)
// @Tags Images
// @Produce json
// @Param title query string true "Set title"
// @Param level query string true "Player level"
// @Param category query string true "Puzzle category"
// @Success 200 {object} map[string][]ImageInfo
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /images/title [get]
func GetImagesByTitle(c *gin.Context) {
	title := c.Query("title")
	level := c.Query("level")
	category := c.Query("category")

	if title == "" || level == "" || category == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingParameters)
		return
	}

	ctx := c.Request.Context()

	var imageSet models.ImageSet
	start := time.Now()
	err := database.ImageSets.FindOne(ctx, bson.M{
		"title":    title,
		"level":    level,
		"category": category,
	}).Decode(&imageSet)
	metrics.RecordDBOperation("findOne", "image_sets", start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, ErrNoImagesForTitle)
		return
	}
	if err != nil {
		log.Println("Error while fetching image set by title: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	imageData := []ImageInfo{}
	for _, label := range sortedLabels(imageSet.FileIDs) {
		entry := imageSet.FileIDs[label]
		id, err := primitive.ObjectIDFromHex(entry.ID)
		if err != nil {
			log.Printf("Image set %q holds an invalid blob id %q under %s", title, entry.ID, label)
			response.Error(c, http.StatusInternalServerError, ErrReadImageFailed)
			return
		}

		_, file, err := services.ReadImage(id)
		if err != nil {
			log.Println("Error while reading image from GridFS: ", err)
			response.Error(c, http.StatusInternalServerError, ErrReadImageFailed)
			return
		}

		imageData = append(imageData, ImageInfo{
			ID:       entry.ID,
			Filename: file.Name,
			URL:      "/image/" + entry.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"images": imageData})
}

// GetImageSets lists every image set document
// @Summary List all image sets
// @Description Returns all image set documents with stringified ids, newest first
// @Tags Images
// @Produce json
// @Success 200 {array} models.ImageSet
// @Failure 500 {object} map[string]string
// @Router /imagesets [get]
func GetImageSets(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := cachePrefixSets + "all"

	var cached []models.ImageSet
	if found, _ := database.GetFromCache(ctx, cacheKey, &cached); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	cursor, err := database.ImageSets.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	metrics.RecordDBOperation("find", "image_sets", start)
	if err != nil {
		log.Println("Error while listing image sets: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	imageSets := []models.ImageSet{}
	if err := cursor.All(ctx, &imageSets); err != nil {
		log.Println("Error while decoding image sets: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	_ = database.SetToCache(ctx, cacheKey, imageSets)

	c.JSON(http.StatusOK, imageSets)
}

// GetImagesBySolutions finds the puzzle entry holding a given blob id
// @Summary Find a puzzle entry by blob id
// @Description Scans the set matching (title, level, category) for the entry whose blob id matches and returns at most one hit
// @Tags Images
// @Produce json
// @Param title query string true "Set title"
// @Param level query string true "Player level"
// @Param category query string true "Puzzle category"
// @Param id query string true "Blob id to look for"
// @Success 200 {object} map[string][]models.PuzzleEntry
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /images/solutions [get]
func GetImagesBySolutions(c *gin.Context) {
	title := c.Query("title")
	level := c.Query("level")
	category := c.Query("category")
	searchID := c.Query("id")

	ctx := c.Request.Context()

	var imageSet models.ImageSet
	start := time.Now()
	err := database.ImageSets.FindOne(ctx, bson.M{
		"title":    title,
		"level":    level,
		"category": category,
	}).Decode(&imageSet)
	metrics.RecordDBOperation("findOne", "image_sets", start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, ErrNoImagesForSolutions)
		return
	}
	if err != nil {
		log.Println("Error while fetching image set for solutions: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	imageData := []models.PuzzleEntry{}
	if searchID != "" {
		for _, label := range sortedLabels(imageSet.FileIDs) {
			if entry := imageSet.FileIDs[label]; entry.ID == searchID {
				imageData = append(imageData, entry)
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"images": imageData})
}

// GetLevelImages lists the image sets of one player level
// @Summary List image sets by level
// @Description Returns the image sets matching the given level, newest first
// @Tags Images
// @Produce json
// @Param level query string true "Player level"
// @Success 200 {object} map[string][]ImageSetSummary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /get_level [get]
func GetLevelImages(c *gin.Context) {
	level := c.Query("level")
	if level == "" {
		response.Error(c, http.StatusBadRequest, ErrLevelRequired)
		return
	}

	ctx := c.Request.Context()
	cacheKey := cachePrefixSets + "level:" + level

	var cached []ImageSetSummary
	if found, _ := database.GetFromCache(ctx, cacheKey, &cached); found && len(cached) > 0 {
		c.JSON(http.StatusOK, gin.H{"image_sets": cached})
		return
	}

	start := time.Now()
	cursor, err := database.ImageSets.Find(ctx, bson.M{"level": level},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	metrics.RecordDBOperation("find", "image_sets", start)
	if err != nil {
		log.Println("Error while listing image sets by level: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	imageSets := []models.ImageSet{}
	if err := cursor.All(ctx, &imageSets); err != nil {
		log.Println("Error while decoding image sets by level: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	if len(imageSets) == 0 {
		response.Message(c, http.StatusNotFound, ErrNoSetsForLevel)
		return
	}

	setsData := make([]ImageSetSummary, 0, len(imageSets))
	for _, imageSet := range imageSets {
		setsData = append(setsData, ImageSetSummary{
			Level:    imageSet.Level,
			Live:     imageSet.Live,
			Title:    imageSet.Title,
			Category: imageSet.Category,
			LiveLink: imageSet.LiveLink,
			DateTime: imageSet.DateTime,
			FileIDs:  imageSet.FileIDs,
		})
	}

	_ = database.SetToCache(ctx, cacheKey, setsData)

	c.JSON(http.StatusOK, gin.H{"image_sets": setsData})
}
