package controllers

import (
	"net/http"

	"palahian/internal/models"

	"github.com/gin-gonic/gin"
)

type BloodlineController struct {
	ownership OwnershipService
}

func NewBloodlineController(ownership OwnershipService) *BloodlineController {
	return &BloodlineController{ownership: ownership}
}

// UpdateBloodlineRequest carries the bloodline id in the body next to the changes.
type UpdateBloodlineRequest struct {
	ID uint `json:"id" binding:"required" example:"1"`
	models.BloodlineAttributes
}

// ListBloodlines godoc
// @Summary List my farm's bloodlines
// @Tags bloodline
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Bloodlines retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Farm not found"
// @Router /bloodlines [get]
func (bc *BloodlineController) ListBloodlines(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	bloodlines, err := bc.ownership.ListBloodlines(identity)
	if err != nil {
		respondError(c, err, "Failed to retrieve bloodlines")
		return
	}
	if bloodlines == nil {
		bloodlines = []models.Bloodline{}
	}

	respondSuccess(c, http.StatusOK, "Bloodlines retrieved successfully", bloodlines)
}

// ListBloodlineOptions godoc
// @Summary Bloodline dropdown options
// @Description Id and name of the caller's bloodlines, alphabetical
// @Tags bloodline
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Bloodlines retrieved successfully"
// @Router /bloodlines/list [get]
func (bc *BloodlineController) ListBloodlineOptions(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	options, err := bc.ownership.ListBloodlineOptions(identity)
	if err != nil {
		respondError(c, err, "Failed to fetch bloodlines")
		return
	}

	respondSuccess(c, http.StatusOK, "Bloodlines retrieved successfully", options)
}

// CreateBloodline godoc
// @Summary Add a bloodline to my farm
// @Tags bloodline
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param bloodline body models.BloodlineAttributes true "Bloodline data"
// @Success 201 {object} map[string]interface{} "Bloodline created successfully"
// @Failure 400 {object} map[string]interface{} "Bloodline name is required"
// @Failure 404 {object} map[string]interface{} "Farm not found"
// @Router /bloodlines [post]
func (bc *BloodlineController) CreateBloodline(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var attrs models.BloodlineAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		badRequest(c, "Invalid request data", err.Error())
		return
	}

	bloodline, err := bc.ownership.CreateBloodline(identity, attrs)
	if err != nil {
		respondError(c, err, "Failed to create bloodline")
		return
	}

	respondSuccess(c, http.StatusCreated, "Bloodline created successfully", bloodline)
}

// UpdateBloodline godoc
// @Summary Update a bloodline of my farm
// @Tags bloodline
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param bloodline body UpdateBloodlineRequest true "Bloodline id and fields to change"
// @Success 200 {object} map[string]interface{} "Bloodline updated successfully"
// @Failure 400 {object} map[string]interface{} "Bloodline ID is required"
// @Failure 404 {object} map[string]interface{} "Bloodline not found"
// @Router /bloodlines [put]
func (bc *BloodlineController) UpdateBloodline(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req UpdateBloodlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Bloodline ID is required", err.Error())
		return
	}

	bloodline, err := bc.ownership.UpdateBloodline(identity, req.ID, req.BloodlineAttributes)
	if err != nil {
		respondError(c, err, "Failed to update bloodline")
		return
	}

	respondSuccess(c, http.StatusOK, "Bloodline updated successfully", bloodline)
}

// DeleteBloodline godoc
// @Summary Delete a bloodline of my farm
// @Tags bloodline
// @Security BearerAuth
// @Produce json
// @Param id query int true "Bloodline ID"
// @Success 200 {object} map[string]interface{} "Bloodline deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bloodline ID is required"
// @Failure 404 {object} map[string]interface{} "Bloodline not found"
// @Router /bloodlines [delete]
func (bc *BloodlineController) DeleteBloodline(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	id, ok := parseID(c.Query("id"))
	if !ok {
		badRequest(c, "Bloodline ID is required", "id must be a valid positive integer")
		return
	}

	if err := bc.ownership.DeleteBloodline(identity, id); err != nil {
		respondError(c, err, "Failed to delete bloodline")
		return
	}

	respondSuccess(c, http.StatusOK, "Bloodline deleted successfully", nil)
}
