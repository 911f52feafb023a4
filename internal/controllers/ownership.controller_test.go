package controllers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"palahian/internal/controllers"
	"palahian/internal/mocks"
	"palahian/internal/models"
	"palahian/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOwnershipControllers() (*gin.Engine, *mocks.MockOwnershipService) {
	svc := new(mocks.MockOwnershipService)
	farms := controllers.NewFarmController(svc)
	stables := controllers.NewStableController(svc)
	bloodlines := controllers.NewBloodlineController(svc)

	router := setupTestRouter()

	authed := router.Group("/")
	authed.Use(addAuthMiddleware(breeder))
	authed.GET("/farm", farms.GetFarm)
	authed.POST("/farm", farms.CreateFarm)
	authed.PUT("/farm", farms.UpdateFarm)
	authed.GET("/bloodlines", bloodlines.ListBloodlines)
	authed.POST("/bloodlines", bloodlines.CreateBloodline)
	authed.PUT("/bloodlines", bloodlines.UpdateBloodline)
	authed.DELETE("/bloodlines", bloodlines.DeleteBloodline)
	authed.GET("/bloodlines/list", bloodlines.ListBloodlineOptions)

	router.GET("/stable", addAuthMiddleware(fighter), stables.GetStable)
	router.POST("/stable", addAuthMiddleware(fighter), stables.CreateStable)

	router.GET("/farm/public/:breederId", farms.GetPublicFarm)
	router.GET("/farms/public", farms.ListPublicFarms)
	return router, svc
}

func TestCreateFarmHandler(t *testing.T) {
	attrs := models.FarmAttributes{Name: ptr("Dela Cruz Gamefarm")}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Success", nil, http.StatusCreated},
		{"Already exists", fmt.Errorf("%w: farm already exists", services.ErrConflict), http.StatusConflict},
		{"Wrong role", fmt.Errorf("%w: role fighter", services.ErrForbidden), http.StatusForbidden},
		{"Missing name", fmt.Errorf("%w: farm name is required", services.ErrValidation), http.StatusBadRequest},
		{"Database down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupOwnershipControllers()
			if tt.err == nil {
				svc.On("CreateFarm", breeder, attrs).Return(&models.Farm{ID: 3, UserID: 1, Name: "Dela Cruz Gamefarm"}, nil)
			} else {
				svc.On("CreateFarm", breeder, attrs).Return(nil, tt.err)
			}

			w := performRequest(router, http.MethodPost, "/farm", attrs)

			assert.Equal(t, tt.wantStatus, w.Code)
			response := decodeBody(t, w)
			if tt.err == nil {
				assert.Equal(t, "success", response["status"])
				data := response["data"].(map[string]interface{})
				assert.Equal(t, float64(3), data["farmId"])
			} else {
				assert.Equal(t, "error", response["status"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetFarmHandler(t *testing.T) {
	router, svc := setupOwnershipControllers()
	svc.On("GetFarm", breeder).Return(nil, fmt.Errorf("%w: farm not found", services.ErrNotFound))

	w := performRequest(router, http.MethodGet, "/farm", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFarmHandlerRejectsBadJSON(t *testing.T) {
	router, svc := setupOwnershipControllers()

	w := performRequest(router, http.MethodPut, "/farm", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateFarm", mock.Anything, mock.Anything)
}

func TestPublicFarmHandlers(t *testing.T) {
	t.Run("Invalid breeder id", func(t *testing.T) {
		router, _ := setupOwnershipControllers()
		w := performRequest(router, http.MethodGet, "/farm/public/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Found", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("GetPublicFarm", uint(7)).Return(&models.PublicFarm{
			Farm:    models.Farm{ID: 2, UserID: 7, Name: "Lipa Farm"},
			Breeder: models.UserSummary{ID: 7, Name: "Juan", Role: models.RoleBreeder},
		}, nil)

		w := performRequest(router, http.MethodGet, "/farm/public/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "Juan", data["breeder"].(map[string]interface{})["name"])
	})

	t.Run("Directory", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("ListPublicFarms").Return([]models.PublicFarm{{Farm: models.Farm{ID: 1}}}, nil)

		w := performRequest(router, http.MethodGet, "/farms/public", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["data"], 1)
	})
}

func TestStableHandlers(t *testing.T) {
	t.Run("Needs setup", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("GetStable", fighter).Return(nil, nil)

		w := performRequest(router, http.MethodGet, "/stable", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, true, data["needsSetup"])
		assert.Nil(t, data["stable"])
	})

	t.Run("Create requires name", func(t *testing.T) {
		router, svc := setupOwnershipControllers()

		w := performRequest(router, http.MethodPost, "/stable", map[string]string{"city": "Cebu"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateStable", mock.Anything, mock.Anything)
	})

	t.Run("Create", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		attrs := models.StableAttributes{Name: "Blue Corner"}
		svc.On("CreateStable", fighter, attrs).Return(&models.Stable{ID: 4, Name: "Blue Corner"}, nil)

		w := performRequest(router, http.MethodPost, "/stable", attrs)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestBloodlineHandlers(t *testing.T) {
	t.Run("Update requires id", func(t *testing.T) {
		router, svc := setupOwnershipControllers()

		w := performRequest(router, http.MethodPut, "/bloodlines", map[string]string{"name": "Kelso"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UpdateBloodline", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Update passes body id", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("UpdateBloodline", breeder, uint(5), models.BloodlineAttributes{Name: ptr("Kelso")}).
			Return(&models.Bloodline{ID: 5, Name: "Kelso"}, nil)

		w := performRequest(router, http.MethodPut, "/bloodlines", map[string]interface{}{"id": 5, "name": "Kelso"})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Delete of another farm's bloodline", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("DeleteBloodline", breeder, uint(9)).Return(fmt.Errorf("%w: bloodline not found", services.ErrNotFound))

		w := performRequest(router, http.MethodDelete, "/bloodlines?id=9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete requires id", func(t *testing.T) {
		router, _ := setupOwnershipControllers()
		w := performRequest(router, http.MethodDelete, "/bloodlines", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Options", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("ListBloodlineOptions", breeder).Return([]models.BloodlineOption{{ID: 1, Name: "Kelso"}}, nil)

		w := performRequest(router, http.MethodGet, "/bloodlines/list", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		options := decodeBody(t, w)["data"].([]interface{})
		assert.Equal(t, "Kelso", options[0].(map[string]interface{})["name"])
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		router, svc := setupOwnershipControllers()
		svc.On("ListBloodlines", breeder).Return([]models.Bloodline(nil), nil)

		w := performRequest(router, http.MethodGet, "/bloodlines", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}
