package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"api/database"
	"api/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// insertObservations reads how many insertOne timings have been recorded for
// the users collection
func insertObservations(t *testing.T) uint64 {
	t.Helper()

	observer, err := metrics.DatabaseOperationDuration.GetMetricWithLabelValues("insertOne", "users")
	assert.NoError(t, err)

	var m dto.Metric
	assert.NoError(t, observer.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/"))
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupValidation(t *testing.T) {
	r := setupRouter()

	w := performRequest(r, http.MethodPost, "/signup", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidData)

	// Missing contactNumber
	w = performRequest(r, http.MethodPost, "/signup", `{"email":"a@b.c","level":"beginner"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidData)
}

func TestSigninValidation(t *testing.T) {
	r := setupRouter()

	w := performRequest(r, http.MethodPost, "/signin", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidData)
}

func TestSignup(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects a duplicate of email, contact number and level", func(mt *mtest.T) {
		database.Users = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "chessclub.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@b.c"},
			{Key: "contactNumber", Value: "12345"},
			{Key: "level", Value: "beginner"},
		}))

		w := performRequest(setupRouter(), http.MethodPost, "/signup",
			`{"email":"a@b.c","level":"beginner","contactNumber":"12345","name":"Ramya"}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), ErrUserExists)
	})

	mt.Run("inserts a new user verbatim", func(mt *mtest.T) {
		database.Users = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "chessclub.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		w := performRequest(setupRouter(), http.MethodPost, "/signup",
			`{"email":"a@b.c","level":"beginner","contactNumber":"12345","name":"Ramya","club":"downtown"}`)

		assert.Equal(mt, http.StatusCreated, w.Code)
		assert.JSONEq(mt, `{"success":true}`, w.Body.String())
	})

	mt.Run("records the insert timing even when the insert fails", func(mt *mtest.T) {
		database.Users = mt.Coll
		before := insertObservations(mt.T)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "chessclub.users", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    121,
				Message: "document failed validation",
			}),
		)

		w := performRequest(setupRouter(), http.MethodPost, "/signup",
			`{"email":"x@b.c","level":"beginner","contactNumber":"999"}`)

		assert.Equal(mt, http.StatusInternalServerError, w.Code)
		assert.Contains(mt, w.Body.String(), ErrDatabaseError)
		assert.Equal(mt, before+1, insertObservations(mt.T))
	})
}

func TestSignin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the stored name for a registered email", func(mt *mtest.T) {
		database.Users = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "chessclub.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@b.c"},
			{Key: "name", Value: "Ramya"},
		}))

		w := performRequest(setupRouter(), http.MethodPost, "/signin", `{"email":"a@b.c"}`)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), `"success":true`)
		assert.Contains(mt, w.Body.String(), "Ramya")
	})

	mt.Run("soft-fails with HTTP 200 for an unknown email", func(mt *mtest.T) {
		database.Users = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chessclub.users", mtest.FirstBatch))

		w := performRequest(setupRouter(), http.MethodPost, "/signin", `{"email":"nobody@b.c"}`)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), `"success":false`)
		assert.Contains(mt, w.Body.String(), MsgEmailNotRegistered)
	})
}
