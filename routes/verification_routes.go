package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/controllers"
)

func SetupVerificationRoutes(api *gin.RouterGroup, verificationController *controllers.VerificationController) {
	verificationGroup := api.Group("/verification")
	{
		verificationGroup.GET("/challenge", verificationController.GetChallenge)
		verificationGroup.POST("/verify", verificationController.VerifyAnswer)
	}
}
