package handler

import (
	"errors"

	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/internal/repository"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles the order ledger routes
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder handles order placement
// POST /place_order
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Place(user, &req)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			response.NotFound(c, "listing not found")
			return
		}
		response.InternalError(c, "failed to place order")
		return
	}

	response.Created(c, gin.H{"order": order})
}

// ManageOrders handles the farmer's incoming-orders view; the farmer gate
// runs before it
// GET /manage_orders
func (h *OrderHandler) ManageOrders(c *gin.Context) {
	user := middleware.GetUser(c)

	orders, err := h.orderService.ForFarmer(user)
	if err != nil {
		if errors.Is(err, service.ErrManageOrdersFarmerOnly) {
			response.FlashRedirect(c, "/dashboard", "Only farmers can manage orders.")
			return
		}
		response.InternalError(c, "failed to load orders")
		return
	}

	response.Success(c, gin.H{"orders": orders})
}

// YourOrders handles the buyer-side purchase history, open to any
// authenticated user
// GET /your_orders
func (h *OrderHandler) YourOrders(c *gin.Context) {
	user := middleware.GetUser(c)

	orders, err := h.orderService.ForBuyer(user)
	if err != nil {
		response.InternalError(c, "failed to load orders")
		return
	}

	response.Success(c, gin.H{"orders": orders})
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	r.POST("/place_order", authMiddleware, h.PlaceOrder)
	r.GET("/your_orders", authMiddleware, h.YourOrders)

	farmerGate := middleware.FarmerOnly("Only farmers can manage orders.")
	r.GET("/manage_orders", authMiddleware, farmerGate, h.ManageOrders)
}
