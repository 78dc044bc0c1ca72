package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/business-boost/api-go/controllers"
)

func SetupReportRoutes(api *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := api.Group("/reports")
	{
		reports.GET("/text", reportController.GetTextReport)
		reports.GET("/csv", reportController.GetCSVReport)
	}
}
