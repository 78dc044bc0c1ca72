package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/verification"
)

type VerificationController struct {
	Engine *verification.Engine
}

type VerifyRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
}

func NewVerificationController(engine *verification.Engine) *VerificationController {
	return &VerificationController{Engine: engine}
}

// GetChallenge godoc
// @Summary Issue a new verification challenge
// @Tags verification
// @Accept json
// @Produce json
// @Success 200 {object} verification.Challenge
// @Router /verification/challenge [get]
func (vc *VerificationController) GetChallenge(c *gin.Context) {
	challenge := vc.Engine.Generate()
	c.JSON(http.StatusOK, challenge)
}

// VerifyAnswer godoc
// @Summary Check a challenge answer
// @Description A failed or malformed answer consumes the challenge and returns a fresh one
// @Tags verification
// @Accept json
// @Produce json
// @Param answer body VerifyRequest true "Challenge answer"
// @Success 200 {object} verification.Result
// @Router /verification/verify [post]
func (vc *VerificationController) VerifyAnswer(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := vc.Engine.Verify(req.ChallengeID, req.Answer)
	c.JSON(http.StatusOK, result)
}
