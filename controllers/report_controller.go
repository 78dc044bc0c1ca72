package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/models"
	"github.com/business-boost/api-go/query"
	"github.com/business-boost/api-go/report"
	"github.com/business-boost/api-go/store"
)

type ReportController struct {
	Store store.DataStore
}

type ReportQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=food retail services"`
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=rating-high rating-low reviews-high reviews-low name-asc name-desc"`
	Download bool   `form:"download"`
}

func NewReportController(dataStore store.DataStore) *ReportController {
	return &ReportController{Store: dataStore}
}

func (rp *ReportController) bindQuery(c *gin.Context) (ReportQuery, bool) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, false
	}
	if q.SortBy == "" {
		q.SortBy = string(query.SortNameAsc)
	}
	return q, true
}

// GetTextReport godoc
// @Summary Generate the plain-text business report
// @Tags reports
// @Accept json
// @Produce plain
// @Param category query string false "Filter by category"
// @Param sortBy query string false "Sort order"
// @Param download query boolean false "Deliver as a file download"
// @Success 200 {string} string
// @Router /reports/text [get]
func (rp *ReportController) GetTextReport(c *gin.Context) {
	q, ok := rp.bindQuery(c)
	if !ok {
		return
	}

	content := report.GenerateTextReport(
		rp.Store.AllBusinesses(),
		models.BusinessCategory(q.Category),
		query.SortOption(q.SortBy),
		time.Now(),
	)

	if q.Download {
		c.Header("Content-Disposition", `attachment; filename="business-report.txt"`)
	}
	c.Data(http.StatusOK, report.MimeText, []byte(content))
}

// GetCSVReport godoc
// @Summary Generate the CSV business report
// @Tags reports
// @Accept json
// @Produce csv
// @Param category query string false "Filter by category"
// @Param sortBy query string false "Sort order"
// @Param download query boolean false "Deliver as a file download"
// @Success 200 {string} string
// @Router /reports/csv [get]
func (rp *ReportController) GetCSVReport(c *gin.Context) {
	q, ok := rp.bindQuery(c)
	if !ok {
		return
	}

	content := report.GenerateCSVReport(
		rp.Store.AllBusinesses(),
		models.BusinessCategory(q.Category),
		query.SortOption(q.SortBy),
	)

	if q.Download {
		c.Header("Content-Disposition", `attachment; filename="business-report.csv"`)
	}
	c.Data(http.StatusOK, report.MimeCSV, []byte(content))
}
