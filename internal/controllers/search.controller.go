package controllers

import (
	"errors"
	"net/http"
	"strings"

	"palahian/internal/geocode"
	"palahian/internal/search"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	search   SearchService
	geocoder Geocoder
}

func NewSearchController(search SearchService, geocoder Geocoder) *SearchController {
	return &SearchController{search: search, geocoder: geocoder}
}

// Search godoc
// @Summary Search chickens and sellers
// @Description A blank q returns empty lists without validating the other parameters. category chickens skips sellers; farms, stables and stores skip chickens.
// @Tags search
// @Produce json
// @Param q query string false "Text to match"
// @Param category query string false "all, chickens, farms, stables or stores"
// @Param gender query string false "all, rooster or hen"
// @Param breederType query string false "all, breeder or fighter"
// @Param priceRange query string false "all, min-max or min-+"
// @Param forSale query bool false "Only chickens for sale"
// @Success 200 {object} map[string]interface{} "Search completed"
// @Failure 400 {object} map[string]interface{} "Invalid search parameters"
// @Router /search [get]
func (sc *SearchController) Search(c *gin.Context) {
	// A blank query answers empty lists whatever the other parameters say.
	if strings.TrimSpace(c.Query("q")) == "" {
		respondSuccess(c, http.StatusOK, "Search completed", search.EmptyResult())
		return
	}

	filter, err := search.ParseFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Invalid search parameters")
		return
	}

	result, err := sc.search.Search(filter)
	if err != nil {
		respondError(c, err, "Search failed")
		return
	}

	respondSuccess(c, http.StatusOK, "Search completed", result)
}

// Geocode godoc
// @Summary Geocode a place name
// @Description Proxies the query to Nominatim and returns its JSON array unchanged
// @Tags search
// @Produce json
// @Param q query string true "Place to look up"
// @Success 200 {array} map[string]interface{} "Geocoder results"
// @Failure 400 {object} map[string]interface{} "Missing query"
// @Failure 500 {object} map[string]interface{} "Geocoding error"
// @Router /geocode [get]
func (sc *SearchController) Geocode(c *gin.Context) {
	body, err := sc.geocoder.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, geocode.ErrEmptyQuery) {
			badRequest(c, "Missing query", "q query parameter is required")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Geocoding error: " + err.Error(),
			"error":   err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
