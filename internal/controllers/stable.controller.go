package controllers

import (
	"net/http"

	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

type StableController struct {
	ownership OwnershipService
}

func NewStableController(ownership OwnershipService) *StableController {
	return &StableController{ownership: ownership}
}

// GetStable godoc
// @Summary Get my stable
// @Description needsSetup is true when the fighter has no stable yet
// @Tags stable
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Stable retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Not a fighter"
// @Router /stable [get]
func (sc *StableController) GetStable(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	stable, err := sc.ownership.GetStable(identity)
	if err != nil {
		respondError(c, err, "Failed to retrieve stable")
		return
	}

	respondSuccess(c, http.StatusOK, "Stable retrieved successfully", gin.H{
		"stable":     stable,
		"needsSetup": stable == nil,
	})
}

// CreateStable godoc
// @Summary Create my stable
// @Description Owner name and email are taken from the account
// @Tags stable
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param stable body models.StableAttributes true "Stable data"
// @Success 201 {object} map[string]interface{} "Stable created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Stable already exists"
// @Router /stable [post]
func (sc *StableController) CreateStable(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var attrs models.StableAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		badRequest(c, "Invalid request data", err.Error())
		return
	}

	stable, err := sc.ownership.CreateStable(identity, attrs)
	if err != nil {
		respondError(c, err, "Failed to create stable")
		return
	}

	respondSuccess(c, http.StatusCreated, "Stable created successfully", stable)
}
