package tournaments

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
)

// CreateTournament creates a new tournament listing
// @Summary Create a tournament
// @Description Creates a tournament with name, date, type and description, all required
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param request body CreateTournamentRequest true "Tournament details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments [post]
func CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tournament := models.Tournament{
		Name:        req.Name,
		Date:        req.Date,
		Type:        req.Type,
		Description: req.Description,
	}

	start := time.Now()
	result, err := database.Tournaments.InsertOne(c.Request.Context(), tournament)
	metrics.RecordDBOperation("insertOne", "admin", start)
	if err != nil {
		log.Println("Error while creating tournament: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Tournament created successfully",
		"id":      id.Hex(),
	})
}

// GetTournaments lists every tournament document
// @Summary List tournaments
// @Description Returns all tournament documents with stringified ids. Never fails on an empty collection.
// @Tags Tournaments
// @Produce json
// @Success 200 {array} models.Tournament
// @Failure 500 {object} map[string]string
// @Router /tournaments [get]
func GetTournaments(c *gin.Context) {
	ctx := c.Request.Context()

	start := time.Now()
	cursor, err := database.Tournaments.Find(ctx, bson.M{})
	metrics.RecordDBOperation("find", "admin", start)
	if err != nil {
		log.Println("Error while listing tournaments: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	// The collection can hold both flat tournaments and documents carrying a
	// nested tournaments array, so decode without a fixed shape.
	tournaments := []bson.M{}
	if err := cursor.All(ctx, &tournaments); err != nil {
		log.Println("Error while decoding tournaments: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// GetTournament fetches one tournament by id
// @Summary Get a tournament
// @Description Returns the tournament matching the given id
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id} [get]
func GetTournament(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidTournamentID)
		return
	}

	var tournament bson.M
	start := time.Now()
	err = database.Tournaments.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&tournament)
	metrics.RecordDBOperation("findOne", "admin", start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(c, http.StatusNotFound, ErrTournamentNotFound)
		return
	}
	if err != nil {
		log.Println("Error while fetching tournament: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// UpdateTournament replaces the supplied subset of tournament fields
// @Summary Update a tournament
// @Description Replaces only the fields present in the request body, other fields are left unchanged
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param request body UpdateTournamentRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id} [put]
func UpdateTournament(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidTournamentID)
		return
	}

	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	updateFields := bson.M{}
	if req.Name != nil {
		updateFields["name"] = *req.Name
	}
	if req.Date != nil {
		updateFields["date"] = *req.Date
	}
	if req.Type != nil {
		updateFields["type"] = *req.Type
	}
	if req.Description != nil {
		updateFields["description"] = *req.Description
	}
	if len(updateFields) == 0 {
		response.Error(c, http.StatusBadRequest, ErrNoFieldsToUpdate)
		return
	}

	start := time.Now()
	result, err := database.Tournaments.UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": updateFields})
	metrics.RecordDBOperation("updateOne", "admin", start)
	if err != nil {
		log.Println("Error while updating tournament: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	if result.MatchedCount == 0 {
		response.Error(c, http.StatusNotFound, ErrTournamentNotFound)
		return
	}

	response.Message(c, http.StatusOK, "Tournament updated successfully")
}

// UpdateTournamentByType patches a nested tournaments array element
// @Summary Update a tournament by type
// @Description Patches the element of a document's tournaments array whose type matches, using only the non-null fields supplied
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param request body UpdateByTypeRequest true "Type and fields to patch"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /update-tournament [put]
func UpdateTournamentByType(c *gin.Context) {
	var req UpdateByTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Type == "" || len(req.Tournament) == 0 {
		response.Error(c, http.StatusBadRequest, ErrTypeAndDetailsNeeded)
		return
	}

	// Positional update restricted to non-null supplied keys
	updateFields := bson.M{}
	for key, value := range req.Tournament {
		if value != nil {
			updateFields["tournaments.$."+key] = value
		}
	}
	if len(updateFields) == 0 {
		response.Error(c, http.StatusBadRequest, ErrNoFieldsToUpdate)
		return
	}

	start := time.Now()
	result, err := database.Tournaments.UpdateOne(
		c.Request.Context(),
		bson.M{"tournaments.type": req.Type},
		bson.M{"$set": updateFields},
	)
	metrics.RecordDBOperation("updateOne", "admin", start)
	if err != nil {
		log.Println("Error while updating tournament by type: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	if result.ModifiedCount == 0 {
		response.Error(c, http.StatusNotFound, ErrNothingUpdated)
		return
	}

	response.Message(c, http.StatusOK, "Tournament updated successfully")
}

// DeleteTournament removes a tournament by id
// @Summary Delete a tournament
// @Description Deletes the tournament matching the given id
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id} [delete]
func DeleteTournament(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidTournamentID)
		return
	}

	start := time.Now()
	result, err := database.Tournaments.DeleteOne(c.Request.Context(), bson.M{"_id": id})
	metrics.RecordDBOperation("deleteOne", "admin", start)
	if err != nil {
		log.Println("Error while deleting tournament: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	if result.DeletedCount == 0 {
		response.Error(c, http.StatusNotFound, ErrTournamentNotFound)
		return
	}

	response.Message(c, http.StatusOK, "Tournament deleted successfully")
}
