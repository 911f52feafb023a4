package controllers_test

import (
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

func setupChickenController() (*gin.Engine, *mocks.MockChickenService) {
	svc := new(mocks.MockChickenService)
	controller := controllers.NewChickenController(svc)

	router := setupTestRouter()
	router.GET("/chickens", addAuthMiddleware(breeder), controller.ListChickens)
	router.POST("/chickens", addAuthMiddleware(breeder), controller.CreateChicken)
	router.GET("/chickens/:id", controller.GetChicken)
	router.PUT("/chickens/:id", addAuthMiddleware(breeder), controller.UpdateChicken)
	router.GET("/chickens/public/:breederId", controller.ListPublicChickens)
	return router, svc
}

func TestCreateChickenHandler(t *testing.T) {
	attrs := models.ChickenAttributes{Gender: ptr(models.GenderRooster), WingbandNo: ptr("W1")}

	t.Run("Created", func(t *testing.T) {
		router, svc := setupChickenController()
		svc.On("Create", breeder, attrs).Return(&models.Chicken{ID: 10, WingbandNo: ptr("W1"), Gender: models.GenderRooster}, nil)

		w := performRequest(router, http.MethodPost, "/chickens", attrs)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(10), data["chickenId"])
		assert.Equal(t, "W1", data["wingbandNo"])
	})

	t.Run("No farm", func(t *testing.T) {
		router, svc := setupChickenController()
		svc.On("Create", breeder, attrs).Return(nil, fmt.Errorf("%w: farm not found", services.ErrNotFound))

		w := performRequest(router, http.MethodPost, "/chickens", attrs)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "farm not found")
	})

	t.Run("Wrong type", func(t *testing.T) {
		router, svc := setupChickenController()

		w := performRequest(router, http.MethodPost, "/chickens", `{"price":"cheap"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetChickenHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockChickenService)
		wantStatus int
	}{
		{
			name:       "Invalid id",
			path:       "/chickens/abc",
			setupMock:  func(m *mocks.MockChickenService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			path: "/chickens/99",
			setupMock: func(m *mocks.MockChickenService) {
				m.On("Get", uint(99)).Return(nil, fmt.Errorf("%w: chicken not found", services.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Found",
			path: "/chickens/3",
			setupMock: func(m *mocks.MockChickenService) {
				m.On("Get", uint(3)).Return(&models.ChickenDetail{
					Chicken: models.Chicken{ID: 3, Bloodline: "Boston Roundhead"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupChickenController()
			tt.setupMock(svc)

			w := performRequest(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}

	t.Run("Null parents serialize as null", func(t *testing.T) {
		router, svc := setupChickenController()
		svc.On("Get", uint(3)).Return(&models.ChickenDetail{Chicken: models.Chicken{ID: 3}}, nil)

		w := performRequest(router, http.MethodGet, "/chickens/3", nil)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Contains(t, data, "father")
		assert.Nil(t, data["father"])
		assert.Nil(t, data["mother"])
	})
}

func TestUpdateChickenHandler(t *testing.T) {
	patch := models.ChickenAttributes{ForSale: ptr(true)}

	t.Run("Not the owner", func(t *testing.T) {
		router, svc := setupChickenController()
		svc.On("Update", breeder, uint(4), patch).Return(nil, fmt.Errorf("%w: belongs to another breeder", services.ErrForbidden))

		w := performRequest(router, http.MethodPut, "/chickens/4", patch)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Cycle", func(t *testing.T) {
		router, svc := setupChickenController()
		cyclic := models.ChickenAttributes{FatherID: ptr(uint(8))}
		svc.On("Update", breeder, uint(4), cyclic).Return(nil, fmt.Errorf("%w: father 8 is a descendant", services.ErrValidation))

		w := performRequest(router, http.MethodPut, "/chickens/4", cyclic)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Updated", func(t *testing.T) {
		router, svc := setupChickenController()
		svc.On("Update", breeder, uint(4), patch).Return(&models.ChickenDetail{Chicken: models.Chicken{ID: 4, ForSale: true}}, nil)

		w := performRequest(router, http.MethodPut, "/chickens/4", patch)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestListChickenHandlers(t *testing.T) {
	router, svc := setupChickenController()
	svc.On("ListForBreeder", breeder).Return([]models.ChickenListing{{Chicken: models.Chicken{ID: 1}}}, nil)
	svc.On("ListPublicForBreeder", uint(1)).Return([]models.ChickenListing{}, nil)

	w := performRequest(router, http.MethodGet, "/chickens", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)

	w = performRequest(router, http.MethodGet, "/chickens/public/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = performRequest(router, http.MethodGet, "/chickens/public/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
