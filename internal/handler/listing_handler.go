package handler

import (
	"errors"

	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// ListingHandler handles the listing catalog routes
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// ViewListings handles the role-dependent listings view: farmers get only
// their own listings, everyone else the full catalog.
// GET /listings
func (h *ListingHandler) ViewListings(c *gin.Context) {
	user := middleware.GetUser(c)

	listings, err := h.listingService.ListFor(user)
	if err != nil {
		response.InternalError(c, "failed to load listings")
		return
	}

	response.Success(c, gin.H{"listings": listings})
}

// ShowAddListing handles the add-listing page; the farmer gate runs before it
// GET /add_listing
func (h *ListingHandler) ShowAddListing(c *gin.Context) {
	response.Success(c, nil)
}

// AddListing handles listing creation
// POST /add_listing
func (h *ListingHandler) AddListing(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	listing, err := h.listingService.Create(user, &req)
	if err != nil {
		if errors.Is(err, service.ErrFarmerOnly) {
			response.FlashRedirect(c, "/dashboard", "Only farmers can add listings.")
			return
		}
		response.InternalError(c, "failed to add listing")
		return
	}

	response.Created(c, gin.H{
		"listing":  listing,
		"redirect": "/listings",
	})
}

// BrowseListings handles the full-catalog view for any authenticated user
// GET /browse_listings
func (h *ListingHandler) BrowseListings(c *gin.Context) {
	listings, err := h.listingService.BrowseAll()
	if err != nil {
		response.InternalError(c, "failed to load listings")
		return
	}

	response.Success(c, gin.H{"listings": listings})
}

// RegisterRoutes registers listing routes
func (h *ListingHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	r.GET("/listings", authMiddleware, h.ViewListings)
	r.GET("/browse_listings", authMiddleware, h.BrowseListings)

	farmerGate := middleware.FarmerOnly("Only farmers can add listings.")
	r.GET("/add_listing", authMiddleware, farmerGate, h.ShowAddListing)
	r.POST("/add_listing", authMiddleware, farmerGate, h.AddListing)
}
