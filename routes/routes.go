package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/controllers"
	"github.com/business-boost/api-go/store"
	"github.com/business-boost/api-go/verification"
)

func SetupRoutes(r *gin.Engine, dataStore store.DataStore, engine *verification.Engine) {
	// Initialize controllers
	businessController := controllers.NewBusinessController(dataStore)
	reviewController := controllers.NewReviewController(dataStore, engine)
	favoriteController := controllers.NewFavoriteController(dataStore)
	reportController := controllers.NewReportController(dataStore)
	verificationController := controllers.NewVerificationController(engine)

	api := r.Group("/api")
	{
		SetupBusinessRoutes(api, businessController, reviewController, favoriteController)
		SetupFavoriteRoutes(api, favoriteController)
		SetupReportRoutes(api, reportController)
		SetupVerificationRoutes(api, verificationController)
	}
}
