package routes

import (
	"palahian/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSearchRoutes(router *gin.Engine, searchController *controllers.SearchController) {
	searchRoutes := router.Group("/api")
	{
		searchRoutes.GET("/search", searchController.Search)
		searchRoutes.GET("/geocode", searchController.Geocode)
	}
}
