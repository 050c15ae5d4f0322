package users

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
	"go.mongodb.org/mongo-driver/mongo"
)

// requiredString extracts a non-empty string field from a decoded JSON document
func requiredString(data map[string]interface{}, key string) (string, bool) {
	value, ok := data[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Signup registers a new club member
// @Summary Sign up a new user
// @Description Creates a user unless one already exists with the same email, contact number and level. The submitted document is stored verbatim, extra fields included.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "User data, must include email, level and contactNumber"
// @Success 201 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /signup [post]
func Signup(c *gin.Context) {
	var userData map[string]interface{}
	if err := c.ShouldBindJSON(&userData); err != nil || len(userData) == 0 {
		response.Error(c, http.StatusBadRequest, ErrInvalidData)
		return
	}

	email, okEmail := requiredString(userData, "email")
	level, okLevel := requiredString(userData, "level")
	contactNumber, okContact := requiredString(userData, "contactNumber")
	if !okEmail || !okLevel || !okContact {
		response.Error(c, http.StatusBadRequest, ErrInvalidData)
		return
	}

	ctx := c.Request.Context()

	// Check if user already exists
	start := time.Now()
	err := database.Users.FindOne(ctx, bson.M{
		"email":         email,
		"contactNumber": contactNumber,
		"level":         level,
	}).Err()
	metrics.RecordDBOperation("findOne", "users", start)

	if err == nil {
		response.Error(c, http.StatusBadRequest, ErrUserExists)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error while checking for existing user: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	// Add new user data
	start = time.Now()
	_, err = database.Users.InsertOne(ctx, userData)
	metrics.RecordDBOperation("insertOne", "users", start)
	if err != nil {
		log.Println("Error while inserting user: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Signin looks up a registered member by email
// @Summary Sign in a user
// @Description Looks up the user by email and returns the stored name. An unknown email is a soft failure with HTTP 200, not an error status.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Signin payload"
// @Success 200 {object} SigninResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /signin [post]
func Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidData)
		return
	}

	var user models.User
	start := time.Now()
	err := database.Users.FindOne(c.Request.Context(), bson.M{"email": req.Email}).Decode(&user)
	metrics.RecordDBOperation("findOne", "users", start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, SigninResponse{
			Success: false,
			Message: MsgEmailNotRegistered,
		})
		return
	}
	if err != nil {
		log.Println("Error while looking up user: ", err)
		response.Error(c, http.StatusInternalServerError, ErrDatabaseError)
		return
	}

	c.JSON(http.StatusOK, SigninResponse{
		Success: true,
		Message: MsgLoginSuccess,
		Name:    user.Name,
	})
}
