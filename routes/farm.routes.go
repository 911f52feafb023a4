package routes

import (
	"palahian/internal/controllers"
	"palahian/internal/middleware"
	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterFarmRoutes(router *gin.Engine, farmController *controllers.FarmController, verifier middleware.TokenVerifier) {
	farmRoutesPublic := router.Group("/api")
	{
		farmRoutesPublic.GET("/farm/public/:breederId", farmController.GetPublicFarm)
		farmRoutesPublic.GET("/farms/public", farmController.ListPublicFarms)
	}
	farmRoutesPrivate := router.Group("/api/farm")
	farmRoutesPrivate.Use(middleware.AuthMiddleware(verifier), middleware.RequireRoles(models.RoleBreeder))
	{
		farmRoutesPrivate.GET("", farmController.GetFarm)
		farmRoutesPrivate.POST("", farmController.CreateFarm)
		farmRoutesPrivate.PUT("", farmController.UpdateFarm)
	}
}
