package controllers

import (
	"net/http"

	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

type FarmController struct {
	ownership OwnershipService
}

func NewFarmController(ownership OwnershipService) *FarmController {
	return &FarmController{ownership: ownership}
}

// GetFarm godoc
// @Summary Get my farm
// @Tags farm
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Farm retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Not authorized"
// @Failure 404 {object} map[string]interface{} "Farm not found"
// @Router /farm [get]
func (fc *FarmController) GetFarm(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	farm, err := fc.ownership.GetFarm(identity)
	if err != nil {
		respondError(c, err, "Failed to retrieve farm")
		return
	}

	respondSuccess(c, http.StatusOK, "Farm retrieved successfully", farm)
}

// CreateFarm godoc
// @Summary Create my farm
// @Description A breeder owns at most one farm
// @Tags farm
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param farm body models.FarmAttributes true "Farm data"
// @Success 201 {object} map[string]interface{} "Farm created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Farm already exists"
// @Router /farm [post]
func (fc *FarmController) CreateFarm(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var attrs models.FarmAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		badRequest(c, "Invalid request data", err.Error())
		return
	}

	farm, err := fc.ownership.CreateFarm(identity, attrs)
	if err != nil {
		respondError(c, err, "Failed to create farm")
		return
	}

	respondSuccess(c, http.StatusCreated, "Farm created successfully", farm)
}

// UpdateFarm godoc
// @Summary Update my farm
// @Description Only the supplied fields change
// @Tags farm
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param farm body models.FarmAttributes true "Farm fields to change"
// @Success 200 {object} map[string]interface{} "Farm updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Farm not found"
// @Router /farm [put]
func (fc *FarmController) UpdateFarm(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var attrs models.FarmAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		badRequest(c, "Invalid request data", err.Error())
		return
	}

	farm, err := fc.ownership.UpdateFarm(identity, attrs)
	if err != nil {
		respondError(c, err, "Failed to update farm")
		return
	}

	respondSuccess(c, http.StatusOK, "Farm updated successfully", farm)
}

// GetPublicFarm godoc
// @Summary Public farm page
// @Tags farm
// @Produce json
// @Param breederId path int true "Breeder user ID"
// @Success 200 {object} map[string]interface{} "Farm retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid breeder ID"
// @Failure 404 {object} map[string]interface{} "Farm not found"
// @Router /farm/public/{breederId} [get]
func (fc *FarmController) GetPublicFarm(c *gin.Context) {
	breederID, ok := parseID(c.Param("breederId"))
	if !ok {
		badRequest(c, "Invalid breeder ID", "ID must be a valid positive integer")
		return
	}

	farm, err := fc.ownership.GetPublicFarm(breederID)
	if err != nil {
		respondError(c, err, "Failed to retrieve farm")
		return
	}

	respondSuccess(c, http.StatusOK, "Farm retrieved successfully", farm)
}

// ListPublicFarms godoc
// @Summary Farm directory
// @Description Farms of breeders, fighters and sellers, newest first
// @Tags farm
// @Produce json
// @Success 200 {object} map[string]interface{} "Farms retrieved successfully"
// @Router /farms/public [get]
func (fc *FarmController) ListPublicFarms(c *gin.Context) {
	farms, err := fc.ownership.ListPublicFarms()
	if err != nil {
		respondError(c, err, "Failed to retrieve farms")
		return
	}

	respondSuccess(c, http.StatusOK, "Farms retrieved successfully", farms)
}
