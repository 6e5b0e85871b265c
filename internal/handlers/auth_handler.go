package handlers

import (
	"net/http"

	"voxql/internal/models"
	"voxql/internal/responses"
	"voxql/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	refreshTokenCookieName = "refresh_token"
	refreshTokenMaxAge     = 30 * 24 * 3600 // seconds
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide username, email and password correctly")
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	accessToken, refreshToken, err := h.authService.Register(user, req.Password)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not register user")
		return
	}

	c.SetCookie(refreshTokenCookieName, refreshToken, refreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": accessToken,
		"user":         user,
	}

	responses.Success(c, http.StatusCreated, res, "New user registered successfully")
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid format")
		return
	}

	user, accessToken, refreshToken, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Failed to login")
		return
	}

	c.SetCookie(refreshTokenCookieName, refreshToken, refreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": accessToken,
		"user":         user,
	}

	responses.Success(c, http.StatusOK, res, "Logged in successfully")
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(refreshTokenCookieName, "", -1, "/", "", true, true)
	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}
