package routes

import (
	"palahian/internal/controllers"
	"palahian/internal/middleware"
	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterBloodlineRoutes(router *gin.Engine, bloodlineController *controllers.BloodlineController, verifier middleware.TokenVerifier) {
	bloodlineRoutes := router.Group("/api/bloodlines")
	bloodlineRoutes.Use(middleware.AuthMiddleware(verifier))
	{
		// Any signed-in role may fill a dropdown.
		bloodlineRoutes.GET("/list", bloodlineController.ListBloodlineOptions)
	}
	breederRoutes := bloodlineRoutes.Group("")
	breederRoutes.Use(middleware.RequireRoles(models.RoleBreeder))
	{
		breederRoutes.GET("", bloodlineController.ListBloodlines)
		breederRoutes.POST("", bloodlineController.CreateBloodline)
		breederRoutes.PUT("", bloodlineController.UpdateBloodline)
		breederRoutes.DELETE("", bloodlineController.DeleteBloodline)
	}
}
