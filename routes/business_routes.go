package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/controllers"
)

func SetupBusinessRoutes(api *gin.RouterGroup, businessController *controllers.BusinessController, reviewController *controllers.ReviewController, favoriteController *controllers.FavoriteController) {
	businesses := api.Group("/businesses")
	{
		businesses.GET("", businessController.GetBusinesses)
		businesses.GET("/:id", businessController.GetBusinessDetails)
		businesses.PUT("/:id", businessController.UpdateBusiness)
		businesses.GET("/:id/reviews", reviewController.GetBusinessReviews)
		businesses.POST("/:id/reviews", reviewController.CreateReview)
		businesses.POST("/:id/favorite", favoriteController.ToggleFavorite)
	}
}
