package controllers

import (
	"net/http"

	"palahian/internal/services"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accounts AccountService
	appURL   string
}

func NewAccountController(accounts AccountService, appURL string) *AccountController {
	return &AccountController{accounts: accounts, appURL: appURL}
}

// Signup godoc
// @Summary Register a new user
// @Description Create an unverified account and send a verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param user body services.SignupInput true "Signup data"
// @Success 201 {object} map[string]interface{} "User created. Please check your email to verify your account."
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 409 {object} map[string]interface{} "Email already in use"
// @Router /auth/signup [post]
func (ac *AccountController) Signup(c *gin.Context) {
	var input services.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Missing required fields", err.Error())
		return
	}

	result, err := ac.accounts.Signup(input)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	respondSuccess(c, http.StatusCreated, "User created. Please check your email to verify your account.", result)
}

// VerifyEmail godoc
// @Summary Verify an email address
// @Description Consume the emailed verification token and redirect to the login page
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 302 "Redirect to login"
// @Failure 400 {object} map[string]interface{} "Invalid or expired verification token"
// @Router /auth/verify-email [get]
func (ac *AccountController) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		badRequest(c, "Missing verification token", "token query parameter is required")
		return
	}

	if err := ac.accounts.VerifyEmail(token); err != nil {
		respondError(c, err, "Invalid or expired verification token")
		return
	}

	c.Redirect(http.StatusFound, ac.appURL+"/login?verified=true")
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginInput true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Missing email or password"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or unverified email"
// @Router /auth/login [post]
func (ac *AccountController) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Missing email or password", err.Error())
		return
	}

	session, err := ac.accounts.Login(input)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", session)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /auth/me [get]
func (ac *AccountController) Me(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	user, err := ac.accounts.Me(identity)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", gin.H{"user": user})
}

// Refresh godoc
// @Summary Refresh the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Token refreshed"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /auth/refresh [post]
func (ac *AccountController) Refresh(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	session, err := ac.accounts.Refresh(identity)
	if err != nil {
		respondError(c, err, "Failed to refresh token")
		return
	}

	respondSuccess(c, http.StatusOK, "Token refreshed", session)
}
