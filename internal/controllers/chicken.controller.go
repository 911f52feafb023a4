package controllers

import (
	"net/http"

	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

type ChickenController struct {
	chickens ChickenService
}

func NewChickenController(chickens ChickenService) *ChickenController {
	return &ChickenController{chickens: chickens}
}

// ListChickens godoc
// @Summary List my chickens
// @Description Newest first, with farm, bloodline and parent band numbers
// @Tags chicken
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Chickens retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /chickens [get]
func (cc *ChickenController) ListChickens(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	chickens, err := cc.chickens.ListForBreeder(identity)
	if err != nil {
		respondError(c, err, "Failed to fetch chickens")
		return
	}

	respondSuccess(c, http.StatusOK, "Chickens retrieved successfully", chickens)
}

// CreateChicken godoc
// @Summary Add a chicken
// @Description Without band numbers a Palahian_{n} wingband is assigned
// @Tags chicken
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chicken body models.ChickenAttributes true "Chicken data"
// @Success 201 {object} map[string]interface{} "Chicken created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Insufficient permissions"
// @Failure 404 {object} map[string]interface{} "Farm not found"
// @Router /chickens [post]
func (cc *ChickenController) CreateChicken(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var attrs models.ChickenAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		badRequest(c, "Invalid request data", err.Error())
		return
	}

	chicken, err := cc.chickens.Create(identity, attrs)
	if err != nil {
		respondError(c, err, "Failed to create chicken")
		return
	}

	respondSuccess(c, http.StatusCreated, "Chicken created successfully", chicken)
}

// GetChicken godoc
// @Summary Get a chicken
// @Description Includes father and mother summaries
// @Tags chicken
// @Produce json
// @Param id path int true "Chicken ID"
// @Success 200 {object} map[string]interface{} "Chicken retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid chicken ID"
// @Failure 404 {object} map[string]interface{} "Chicken not found"
// @Router /chickens/{id} [get]
func (cc *ChickenController) GetChicken(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "Invalid chicken ID", "ID must be a valid positive integer")
		return
	}

	chicken, err := cc.chickens.Get(id)
	if err != nil {
		respondError(c, err, "Failed to fetch chicken")
		return
	}

	respondSuccess(c, http.StatusOK, "Chicken retrieved successfully", chicken)
}

// UpdateChicken godoc
// @Summary Update one of my chickens
// @Description Only the supplied fields change. A zero fatherId, motherId or bloodlineId clears it.
// @Tags chicken
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Chicken ID"
// @Param chicken body models.ChickenAttributes true "Fields to change"
// @Success 200 {object} map[string]interface{} "Chicken updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Chicken not found"
// @Router /chickens/{id} [put]
func (cc *ChickenController) UpdateChicken(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "Invalid chicken ID", "ID must be a valid positive integer")
		return
	}

	var attrs models.ChickenAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		badRequest(c, "Invalid request data", err.Error())
		return
	}

	chicken, err := cc.chickens.Update(identity, id, attrs)
	if err != nil {
		respondError(c, err, "Failed to update chicken")
		return
	}

	respondSuccess(c, http.StatusOK, "Chicken updated successfully", chicken)
}

// ListPublicChickens godoc
// @Summary A breeder's public chickens
// @Tags chicken
// @Produce json
// @Param breederId path int true "Breeder user ID"
// @Success 200 {object} map[string]interface{} "Chickens retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid breeder ID"
// @Router /chickens/public/{breederId} [get]
func (cc *ChickenController) ListPublicChickens(c *gin.Context) {
	breederID, ok := parseID(c.Param("breederId"))
	if !ok {
		badRequest(c, "Invalid breeder ID", "ID must be a valid positive integer")
		return
	}

	chickens, err := cc.chickens.ListPublicForBreeder(breederID)
	if err != nil {
		respondError(c, err, "Failed to fetch chickens")
		return
	}

	respondSuccess(c, http.StatusOK, "Chickens retrieved successfully", chickens)
}
