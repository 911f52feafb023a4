package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"palahian/internal/controllers"
	"palahian/internal/mocks"
	"palahian/internal/models"
	"palahian/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAccountController() (*gin.Engine, *mocks.MockAccountService) {
	svc := new(mocks.MockAccountService)
	controller := controllers.NewAccountController(svc, "http://localhost:5000")

	router := setupTestRouter()
	router.POST("/auth/signup", controller.Signup)
	router.POST("/auth/login", controller.Login)
	router.GET("/auth/verify-email", controller.VerifyEmail)
	router.GET("/auth/me", addAuthMiddleware(breeder), controller.Me)
	router.POST("/auth/refresh", addAuthMiddleware(breeder), controller.Refresh)
	return router, svc
}

func TestSignup(t *testing.T) {
	input := services.SignupInput{Name: "Juan", Email: "a@b.com", Password: "secret", Role: models.RoleBreeder}

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(*mocks.MockAccountService)
		wantStatus int
	}{
		{
			name: "Success",
			body: input,
			setupMock: func(m *mocks.MockAccountService) {
				m.On("Signup", input).Return(&services.SignupResult{
					User:      models.UserSummary{ID: 1, Name: "Juan", Email: "a@b.com", Role: models.RoleBreeder},
					EmailSent: true,
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing fields",
			body:       map[string]string{"email": "a@b.com"},
			setupMock:  func(m *mocks.MockAccountService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate email",
			body: input,
			setupMock: func(m *mocks.MockAccountService) {
				m.On("Signup", input).Return(nil, fmt.Errorf("%w: email already in use", services.ErrConflict))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupAccountController()
			tt.setupMock(svc)

			w := performRequest(router, http.MethodPost, "/auth/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
			if tt.wantStatus == http.StatusCreated {
				response := decodeBody(t, w)
				assert.Equal(t, "success", response["status"])
				data := response["data"].(map[string]interface{})
				assert.Equal(t, true, data["emailSent"])
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("Unverified", func(t *testing.T) {
		router, svc := setupAccountController()
		svc.On("Login", mock.Anything).Return(nil, fmt.Errorf("%w: please verify your email", services.ErrUnauthorized))

		w := performRequest(router, http.MethodPost, "/auth/login", services.LoginInput{Email: "a@b.com", Password: "x"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "verify your email")
	})

	t.Run("Success", func(t *testing.T) {
		router, svc := setupAccountController()
		svc.On("Login", services.LoginInput{Email: "a@b.com", Password: "x"}).Return(&services.Session{
			Token:     "jwt",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		w := performRequest(router, http.MethodPost, "/auth/login", services.LoginInput{Email: "a@b.com", Password: "x"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "jwt", data["token"])
	})
}

func TestVerifyEmail(t *testing.T) {
	t.Run("Redirects to login", func(t *testing.T) {
		router, svc := setupAccountController()
		svc.On("VerifyEmail", "abc").Return(nil)

		w := performRequest(router, http.MethodGet, "/auth/verify-email?token=abc", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://localhost:5000/login?verified=true", w.Header().Get("Location"))
	})

	t.Run("Missing token", func(t *testing.T) {
		router, svc := setupAccountController()

		w := performRequest(router, http.MethodGet, "/auth/verify-email", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "VerifyEmail", mock.Anything)
	})

	t.Run("Expired token", func(t *testing.T) {
		router, svc := setupAccountController()
		svc.On("VerifyEmail", "old").Return(fmt.Errorf("%w: invalid or expired verification token", services.ErrValidation))

		w := performRequest(router, http.MethodGet, "/auth/verify-email?token=old", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMe(t *testing.T) {
	router, svc := setupAccountController()
	svc.On("Me", breeder).Return(&models.UserSummary{ID: 1, Name: "Juan", Role: models.RoleBreeder}, nil)

	w := performRequest(router, http.MethodGet, "/auth/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Juan", user["name"])
	assert.Equal(t, float64(1), user["userId"])
}
