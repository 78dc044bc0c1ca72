package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/models"
	"github.com/business-boost/api-go/query"
	"github.com/business-boost/api-go/store"
)

type BusinessController struct {
	Store store.DataStore
}

type BusinessListQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=food retail services"`
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=rating-high rating-low reviews-high reviews-low name-asc name-desc"`
	Search   string `form:"search"`
}

func NewBusinessController(dataStore store.DataStore) *BusinessController {
	return &BusinessController{Store: dataStore}
}

// GetBusinesses godoc
// @Summary List businesses with optional filter, search and sort
// @Tags businesses
// @Accept json
// @Produce json
// @Param category query string false "Filter by category: food, retail, services"
// @Param sortBy query string false "Sort order: rating-high, rating-low, reviews-high, reviews-low, name-asc, name-desc"
// @Param search query string false "Search name, description, address and category"
// @Success 200 {object} StandardResponse
// @Router /businesses [get]
func (bc *BusinessController) GetBusinesses(c *gin.Context) {
	var q BusinessListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	businesses := bc.Store.AllBusinesses()
	total := len(businesses)

	if q.Search != "" {
		businesses = query.SearchBusinesses(businesses, q.Search)
	}
	businesses = query.FilterByCategory(businesses, models.BusinessCategory(q.Category))

	sortBy := query.SortOption(q.SortBy)
	if q.SortBy == "" {
		sortBy = query.SortNameAsc
	}
	businesses = query.SortBusinesses(businesses, sortBy)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    businesses,
		Meta: gin.H{
			"total":    total,
			"returned": len(businesses),
			"category": q.Category,
			"sortBy":   sortBy,
		},
	})
}

// GetBusinessDetails godoc
// @Summary Get a single business with its reviews and deals
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} StandardResponse
// @Router /businesses/{id} [get]
func (bc *BusinessController) GetBusinessDetails(c *gin.Context) {
	id := c.Param("id")

	business, ok := bc.Store.GetBusiness(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    business,
		Meta:    gin.H{"isFavorite": bc.Store.IsFavorite(id)},
	})
}

// UpdateBusiness godoc
// @Summary Update business fields
// @Description Merges the provided fields into the business; omitted fields are untouched
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param business body store.BusinessUpdate true "Fields to update"
// @Success 200 {object} StandardResponse
// @Router /businesses/{id} [put]
func (bc *BusinessController) UpdateBusiness(c *gin.Context) {
	id := c.Param("id")

	var updates store.BusinessUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := bc.Store.GetBusiness(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	if err := bc.Store.UpdateBusiness(id, updates); err != nil {
		respondWithPersistWarning(c, http.StatusOK, nil, err)
		return
	}

	business, _ := bc.Store.GetBusiness(id)
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: business})
}
