package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/business-boost/api-go/models"
	"github.com/business-boost/api-go/routes"
	"github.com/business-boost/api-go/store"
	"github.com/business-boost/api-go/verification"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store, *verification.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	seed := models.SeedData{
		Businesses: []models.Business{
			{
				ID:       "b1",
				Name:     "Alpha Cafe",
				Category: models.CategoryFood,
				Address:  "1 First St",
				Reviews: []models.Review{
					{ID: "r1", BusinessID: "b1", UserName: "Ann", Rating: 3, Comment: "Decent but crowded at noon.", Date: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), Verified: true},
					{ID: "r2", BusinessID: "b1", UserName: "Bob", Rating: 3, Comment: "Average across the board really.", Date: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), Verified: true},
				},
			},
			{
				ID:       "b2",
				Name:     "Beta Books",
				Category: models.CategoryRetail,
				Address:  "2 Second St",
			},
		},
	}
	raw, err := json.Marshal(seed)
	require.NoError(t, err)
	seedPath := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seedPath, raw, 0644))

	st := store.New(db, seedPath)
	_, err = st.Initialize(context.Background())
	require.NoError(t, err)

	engine := verification.NewEngine()
	r := gin.New()
	routes.SetupRoutes(r, st, engine)
	return r, st, engine
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// solveChallenge fetches a challenge and returns its id and correct answer.
func solveChallenge(t *testing.T, r *gin.Engine) (string, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/verification/challenge", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ch struct {
		ChallengeID string `json:"challengeId"`
		Question    string `json:"question"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))

	var a, b int
	_, err := fmt.Sscanf(ch.Question, "What is %d + %d?", &a, &b)
	require.NoError(t, err)
	return ch.ChallengeID, fmt.Sprintf("%d", a+b)
}

func TestCreateReviewEndToEnd(t *testing.T) {
	r, st, _ := newTestServer(t)
	challengeID, answer := solveChallenge(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/businesses/b1/reviews", gin.H{
		"userName":    "Cara",
		"rating":      5,
		"comment":     "Hands down my favorite cafe in town.",
		"challengeId": challengeID,
		"answer":      answer,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Aggregates recomputed in the same mutation: (3+3+5)/3.
	b, ok := st.GetBusiness("b1")
	require.True(t, ok)
	assert.InDelta(t, 11.0/3.0, b.AverageRating, 1e-9)
	assert.Equal(t, 3, b.ReviewCount)

	// The new review is verified and newest-first in the listing.
	w = doJSON(t, r, http.MethodGet, "/api/businesses/b1/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Data []models.Review `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Data, 3)
	assert.Equal(t, "Cara", listing.Data[0].UserName)
	assert.True(t, listing.Data[0].Verified)
}

func TestCreateReviewWrongAnswerBlocksAndReissues(t *testing.T) {
	r, st, _ := newTestServer(t)
	challengeID, answer := solveChallenge(t, r)
	wrong := answer + "1"

	w := doJSON(t, r, http.MethodPost, "/api/businesses/b1/reviews", gin.H{
		"userName":    "Cara",
		"rating":      5,
		"comment":     "Hands down my favorite cafe in town.",
		"challengeId": challengeID,
		"answer":      wrong,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Challenge *struct {
			ChallengeID string `json:"challengeId"`
			Question    string `json:"question"`
		} `json:"challenge"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Challenge)
	assert.NotEqual(t, challengeID, resp.Challenge.ChallengeID)

	// Nothing reached the store.
	b, _ := st.GetBusiness("b1")
	assert.Equal(t, 2, b.ReviewCount)
}

func TestCreateReviewValidationFailure(t *testing.T) {
	r, st, _ := newTestServer(t)
	challengeID, answer := solveChallenge(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/businesses/b1/reviews", gin.H{
		"userName":    "<script>",
		"rating":      9,
		"comment":     "short",
		"challengeId": challengeID,
		"answer":      answer,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "userName")
	assert.Contains(t, resp.Fields, "rating")
	assert.Contains(t, resp.Fields, "comment")

	b, _ := st.GetBusiness("b1")
	assert.Equal(t, 2, b.ReviewCount)
}

func TestCreateReviewUnknownBusiness(t *testing.T) {
	r, _, _ := newTestServer(t)
	challengeID, answer := solveChallenge(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/businesses/ghost/reviews", gin.H{
		"userName":    "Cara",
		"rating":      5,
		"comment":     "Hands down my favorite cafe in town.",
		"challengeId": challengeID,
		"answer":      answer,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleFavoriteEndpoint(t *testing.T) {
	r, st, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/businesses/b2/favorite", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorited": true}`, w.Body.String())
	assert.True(t, st.IsFavorite("b2"))

	w = doJSON(t, r, http.MethodPost, "/api/businesses/b2/favorite", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorited": false}`, w.Body.String())
	assert.False(t, st.IsFavorite("b2"))
}

func TestListBusinessesFilterAndSort(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/businesses?category=food&sortBy=name-desc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Business `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "b1", resp.Data[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/businesses?category=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCSVReportEndpoint(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports/csv?download=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "business-report.csv")
	assert.Contains(t, w.Body.String(), "Name,Category,Rating,Review Count,Address,Phone,Active Deals")
	assert.Contains(t, w.Body.String(), `"Alpha Cafe"`)
}
