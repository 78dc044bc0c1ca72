package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/business-boost/api-go/models"
	"github.com/business-boost/api-go/query"
	"github.com/business-boost/api-go/store"
	"github.com/business-boost/api-go/validation"
	"github.com/business-boost/api-go/verification"
)

type ReviewController struct {
	Store  store.DataStore
	Engine *verification.Engine
}

type CreateReviewRequest struct {
	UserName    string `json:"userName" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"comment" binding:"required"`
	ChallengeID string `json:"challengeId" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
}

func NewReviewController(dataStore store.DataStore, engine *verification.Engine) *ReviewController {
	return &ReviewController{Store: dataStore, Engine: engine}
}

// CreateReview godoc
// @Summary Submit a review for a business
// @Description Validates the fields, checks the verification challenge and appends the review. The business's average rating and review count are recomputed in the same mutation.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param review body CreateReviewRequest true "Review submission"
// @Success 201 {object} StandardResponse
// @Router /businesses/{id}/reviews [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	businessID := c.Param("id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Field validation is local to the submission; nothing reaches the
	// store until every field passes.
	fieldErrors := gin.H{}
	if res := validation.ValidateUserName(req.UserName); !res.Valid {
		fieldErrors["userName"] = res.Error
	}
	if res := validation.ValidateRating(req.Rating); !res.Valid {
		fieldErrors["rating"] = res.Error
	}
	if res := validation.ValidateComment(req.Comment); !res.Valid {
		fieldErrors["comment"] = res.Error
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrors})
		return
	}

	if _, ok := rc.Store.GetBusiness(businessID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	result := rc.Engine.Verify(req.ChallengeID, req.Answer)
	if !result.Passed {
		// A failed attempt never reuses the prior question.
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     result.Error,
			"challenge": result.Next,
		})
		return
	}

	review := models.Review{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		UserName:   req.UserName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Date:       time.Now(),
		Verified:   true,
	}

	if err := rc.Store.AddReview(businessID, review); err != nil {
		respondWithPersistWarning(c, http.StatusCreated, review, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: review})
}

// GetBusinessReviews godoc
// @Summary List reviews for a business, newest first
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} StandardResponse
// @Router /businesses/{id}/reviews [get]
func (rc *ReviewController) GetBusinessReviews(c *gin.Context) {
	businessID := c.Param("id")

	business, ok := rc.Store.GetBusiness(businessID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	reviews := query.SortReviewsByDate(business.Reviews, true)
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    reviews,
		Meta: gin.H{
			"averageRating": business.AverageRating,
			"reviewCount":   business.ReviewCount,
		},
	})
}
