package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/query"
	"github.com/business-boost/api-go/store"
)

type FavoriteController struct {
	Store store.DataStore
}

func NewFavoriteController(dataStore store.DataStore) *FavoriteController {
	return &FavoriteController{Store: dataStore}
}

// ToggleFavorite godoc
// @Summary Favorite or unfavorite a business
// @Description Toggles favorite membership; toggling twice restores the prior state
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} map[string]interface{}
// @Router /businesses/{id}/favorite [post]
func (fc *FavoriteController) ToggleFavorite(c *gin.Context) {
	businessID := c.Param("id")

	favorited, err := fc.Store.ToggleFavorite(businessID)
	if err != nil {
		respondWithPersistWarning(c, http.StatusOK, gin.H{"favorited": favorited}, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// GetFavorites godoc
// @Summary List favorited businesses
// @Description Returns favorited businesses in the original collection order, not favorite-insertion order
// @Tags favorites
// @Accept json
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /favorites [get]
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	favorites := query.GetFavorites(fc.Store.AllBusinesses(), fc.Store.FavoriteIDs())

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    favorites,
		Meta:    gin.H{"count": len(favorites)},
	})
}
