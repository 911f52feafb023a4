package routes

import (
	"palahian/internal/controllers"
	"palahian/internal/middleware"
	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterStableRoutes(router *gin.Engine, stableController *controllers.StableController, verifier middleware.TokenVerifier) {
	stableRoutes := router.Group("/api/stable")
	stableRoutes.Use(middleware.AuthMiddleware(verifier), middleware.RequireRoles(models.RoleFighter))
	{
		stableRoutes.GET("", stableController.GetStable)
		stableRoutes.POST("", stableController.CreateStable)
	}
}
