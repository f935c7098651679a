package handler

import (
	"errors"

	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login, and logout
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// redirectIfAuthenticated sends an authenticated visitor to the dashboard.
// Returns true when the request was handled.
func (h *AuthHandler) redirectIfAuthenticated(c *gin.Context) bool {
	token := middleware.ExtractToken(c, h.authService.CookieName())
	if token == "" {
		return false
	}
	if _, err := h.authService.CurrentUser(c.Request.Context(), token); err != nil {
		return false
	}
	response.Redirect(c, "/dashboard")
	return true
}

// ShowRegister handles the registration page
// GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}
	response.Success(c, gin.H{
		"account_types": []string{"farmer", "buyer"},
	})
}

// Register handles user registration
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}

	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.BadRequest(c, "username already taken")
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "email already taken")
			return
		}
		response.InternalError(c, "failed to register user")
		return
	}

	response.Created(c, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"account_type": user.AccountType,
		"redirect":     "/login",
	})
}

// ShowLogin handles the login page
// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}
	response.Success(c, nil)
}

// Login handles user login
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}

	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		response.InternalError(c, "failed to login")
		return
	}

	c.SetCookie(h.authService.CookieName(), token.AccessToken,
		token.ExpiresIn, "/", "", false, true)
	response.Success(c, token)
}

// Logout handles logout. Safe to call with no session at all.
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c, h.authService.CookieName())
	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			response.InternalError(c, "failed to logout")
			return
		}
	}

	c.SetCookie(h.authService.CookieName(), "", -1, "/", "", false, true)
	response.Redirect(c, "/")
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}
