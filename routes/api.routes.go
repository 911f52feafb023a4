package routes

import (
	"palahian/internal/controllers"
	"palahian/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Account   *controllers.AccountController
	Farm      *controllers.FarmController
	Stable    *controllers.StableController
	Bloodline *controllers.BloodlineController
	Chicken   *controllers.ChickenController
	Search    *controllers.SearchController
}

// RegisterAPIRoutes mounts every /api route group on router.
func RegisterAPIRoutes(router *gin.Engine, c Controllers, verifier middleware.TokenVerifier) {
	RegisterAuthRoutes(router, c.Account, verifier)
	RegisterFarmRoutes(router, c.Farm, verifier)
	RegisterStableRoutes(router, c.Stable, verifier)
	RegisterBloodlineRoutes(router, c.Bloodline, verifier)
	RegisterChickenRoutes(router, c.Chicken, verifier)
	RegisterSearchRoutes(router, c.Search)
}
