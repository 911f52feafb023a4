package routes

import (
	"palahian/internal/controllers"
	"palahian/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, accountController *controllers.AccountController, verifier middleware.TokenVerifier) {
	authRoutesPublic := router.Group("/api/auth")
	{
		authRoutesPublic.POST("/signup", accountController.Signup)
		authRoutesPublic.POST("/login", accountController.Login)
		authRoutesPublic.GET("/verify-email", accountController.VerifyEmail)
	}
	authRoutesPrivate := router.Group("/api/auth")
	authRoutesPrivate.Use(middleware.AuthMiddleware(verifier))
	{
		authRoutesPrivate.GET("/me", accountController.Me)
		authRoutesPrivate.POST("/refresh", accountController.Refresh)
	}
}
