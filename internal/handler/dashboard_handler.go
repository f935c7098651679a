package handler

import (
	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the dashboard and placeholder views
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Dashboard handles the authenticated landing view
// GET /dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user := middleware.GetUser(c)

	response.Success(c, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"account_type": user.AccountType,
		"image_file":   user.ImageFile,
		"date_joined":  user.DateJoined,
	})
}

// FavoriteFarmers is a placeholder with no backing data yet.
// GET /favorite_farmers
func (h *DashboardHandler) FavoriteFarmers(c *gin.Context) {
	response.Success(c, gin.H{"farmers": []any{}})
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	r.GET("/dashboard", authMiddleware, h.Dashboard)
	r.GET("/favorite_farmers", authMiddleware, h.FavoriteFarmers)
}
