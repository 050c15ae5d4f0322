package tournaments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"api/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

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

func TestCreateTournamentValidation(t *testing.T) {
	r := setupRouter()

	// description missing
	w := performRequest(r, http.MethodPost, "/tournaments",
		`{"name":"Spring Open","date":"2024-04-01","type":"rapid"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTournament(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the new id on insert", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		w := performRequest(setupRouter(), http.MethodPost, "/tournaments",
			`{"name":"Spring Open","date":"2024-04-01","type":"rapid","description":"Open rapid event"}`)

		assert.Equal(mt, http.StatusCreated, w.Code)
		assert.Contains(mt, w.Body.String(), "Tournament created successfully")
		assert.Contains(mt, w.Body.String(), `"id"`)
	})
}

func TestGetTournaments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document including nested shapes", func(mt *mtest.T) {
		database.Tournaments = mt.Coll

		flat := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Spring Open"},
			{Key: "type", Value: "rapid"},
		}
		nested := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "tournaments", Value: bson.A{
				bson.D{{Key: "type", Value: "blitz"}, {Key: "name", Value: "Friday Blitz"}},
			}},
		}

		ns := "chessclub.admin"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, flat),
			mtest.CreateCursorResponse(1, ns, mtest.NextBatch, nested),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		w := performRequest(setupRouter(), http.MethodGet, "/tournaments", "")

		assert.Equal(mt, http.StatusOK, w.Code)

		var got []map[string]interface{}
		assert.NoError(mt, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(mt, got, 2)
		assert.Equal(mt, "Spring Open", got[0]["name"])
		assert.Contains(mt, got[1], "tournaments")
	})

	mt.Run("returns an empty array for an empty collection", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chessclub.admin", mtest.FirstBatch))

		w := performRequest(setupRouter(), http.MethodGet, "/tournaments", "")

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Equal(mt, "[]", strings.TrimSpace(w.Body.String()))
	})
}

func TestGetTournament(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects a malformed id", func(mt *mtest.T) {
		w := performRequest(setupRouter(), http.MethodGet, "/tournaments/not-a-hex-id", "")

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), ErrInvalidTournamentID)
	})

	mt.Run("returns the matching document", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "chessclub.admin", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Spring Open"},
		}))

		w := performRequest(setupRouter(), http.MethodGet, "/tournaments/"+id.Hex(), "")

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Spring Open")
	})

	mt.Run("404s on an unknown id", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chessclub.admin", mtest.FirstBatch))

		w := performRequest(setupRouter(), http.MethodGet, "/tournaments/"+primitive.NewObjectID().Hex(), "")

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), ErrTournamentNotFound)
	})
}

func TestUpdateTournament(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects an empty field set", func(mt *mtest.T) {
		w := performRequest(setupRouter(), http.MethodPut,
			"/tournaments/"+primitive.NewObjectID().Hex(), `{}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), ErrNoFieldsToUpdate)
	})

	mt.Run("updates the supplied subset", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		w := performRequest(setupRouter(), http.MethodPut,
			"/tournaments/"+primitive.NewObjectID().Hex(), `{"date":"2024-05-01"}`)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Tournament updated successfully")
	})

	mt.Run("404s when nothing matches", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		w := performRequest(setupRouter(), http.MethodPut,
			"/tournaments/"+primitive.NewObjectID().Hex(), `{"name":"Renamed"}`)

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), ErrTournamentNotFound)
	})
}

func TestUpdateTournamentByType(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("requires type and tournament details", func(mt *mtest.T) {
		w := performRequest(setupRouter(), http.MethodPut, "/update-tournament", `{"type":"rapid"}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), ErrTypeAndDetailsNeeded)
	})

	mt.Run("ignores null values and rejects an all-null patch", func(mt *mtest.T) {
		w := performRequest(setupRouter(), http.MethodPut, "/update-tournament",
			`{"type":"rapid","tournament":{"name":null,"date":null}}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), ErrNoFieldsToUpdate)
	})

	mt.Run("patches the matching array element", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		w := performRequest(setupRouter(), http.MethodPut, "/update-tournament",
			`{"type":"rapid","tournament":{"name":"Renamed Rapid","date":null}}`)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Tournament updated successfully")
	})

	mt.Run("404s when no element was modified", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		w := performRequest(setupRouter(), http.MethodPut, "/update-tournament",
			`{"type":"bullet","tournament":{"name":"Missing"}}`)

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), ErrNothingUpdated)
	})
}

func TestDeleteTournament(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deletes the matching document", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		w := performRequest(setupRouter(), http.MethodDelete,
			"/tournaments/"+primitive.NewObjectID().Hex(), "")

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Tournament deleted successfully")
	})

	mt.Run("404s on an unknown id", func(mt *mtest.T) {
		database.Tournaments = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		w := performRequest(setupRouter(), http.MethodDelete,
			"/tournaments/"+primitive.NewObjectID().Hex(), "")

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), ErrTournamentNotFound)
	})
}
