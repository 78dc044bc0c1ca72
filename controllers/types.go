package controllers

import (
	"log"

	"github.com/gin-gonic/gin"
)

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
}

// respondWithPersistWarning reports a mutation that took effect in memory
// but could not be persisted. The session data stays correct, so the
// request still succeeds with a warning rather than failing outright.
func respondWithPersistWarning(c *gin.Context, status int, data interface{}, err error) {
	log.Printf("Warning: persist failed: %v", err)
	c.JSON(status, StandardResponse{
		Success: true,
		Data:    data,
		Message: "Saved for this session, but changes could not be persisted",
	})
}
