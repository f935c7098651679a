package handler

import (
	"net/http"
	"time"

	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Listing   *ListingHandler
	Order     *OrderHandler
	Message   *MessageHandler
	Dashboard *DashboardHandler
	Feed      *FeedHandler // optional; nil disables the live feed
}

// NewRouter builds the gin engine with the full marketplace route table.
func NewRouter(h Handlers, authService *service.AuthService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLoggerMiddleware())

	// Public landing page
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"name":    "farmlink",
			"message": "fresh produce, direct from the farm",
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	authMiddleware := middleware.AuthMiddleware(authService)

	h.Auth.RegisterRoutes(router)
	h.Dashboard.RegisterRoutes(router, authMiddleware)
	h.Listing.RegisterRoutes(router, authMiddleware)
	h.Order.RegisterRoutes(router, authMiddleware)
	h.Message.RegisterRoutes(router, authMiddleware)
	if h.Feed != nil {
		h.Feed.RegisterRoutes(router, authMiddleware)
	}

	return router
}
