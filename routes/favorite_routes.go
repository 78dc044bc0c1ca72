package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/controllers"
)

func SetupFavoriteRoutes(api *gin.RouterGroup, favoriteController *controllers.FavoriteController) {
	api.GET("/favorites", favoriteController.GetFavorites)
}
