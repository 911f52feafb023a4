package routes

import (
	"palahian/internal/controllers"
	"palahian/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChickenRoutes(router *gin.Engine, chickenController *controllers.ChickenController, verifier middleware.TokenVerifier) {
	chickenRoutesPublic := router.Group("/api/chickens")
	{
		chickenRoutesPublic.GET("/:id", chickenController.GetChicken)
		chickenRoutesPublic.GET("/public/:breederId", chickenController.ListPublicChickens)
	}
	chickenRoutesPrivate := router.Group("/api/chickens")
	chickenRoutesPrivate.Use(middleware.AuthMiddleware(verifier))
	{
		chickenRoutesPrivate.GET("", chickenController.ListChickens)
		chickenRoutesPrivate.POST("", chickenController.CreateChicken)
		chickenRoutesPrivate.PUT("/:id", chickenController.UpdateChicken)
	}
}
