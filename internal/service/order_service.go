package service

import (
	"errors"
	"math"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/policy"
	"github.com/farmlink/internal/repository"
)

var (
	ErrManageOrdersFarmerOnly = errors.New("only farmers can manage orders")
)

// OrderService handles the order ledger
type OrderService struct {
	orderRepo   *repository.OrderRepository
	listingRepo *repository.ListingRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo *repository.OrderRepository, listingRepo *repository.ListingRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
	}
}

// PlaceOrderRequest represents the place order request
type PlaceOrderRequest struct {
	ListingID uint `json:"listing_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// Place records a purchase of a listing by the current user. The total is
// listing price times quantity at currency precision, and the farmer id is
// derived from the listing owner inside the write transaction.
func (s *OrderService) Place(currentUser *models.User, req *PlaceOrderRequest) (*models.Order, error) {
	listing, err := s.listingRepo.GetByID(req.ListingID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ListingID:  listing.ID,
		BuyerID:    currentUser.ID,
		FarmerID:   listing.UserID,
		Quantity:   req.Quantity,
		TotalPrice: roundCents(listing.Price * float64(req.Quantity)),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ForFarmer returns orders placed against the current user's listings.
// Restricted to farmers.
func (s *OrderService) ForFarmer(currentUser *models.User) ([]models.Order, error) {
	if !policy.CanManageOrders(currentUser) {
		return nil, ErrManageOrdersFarmerOnly
	}
	return s.orderRepo.GetByFarmerID(currentUser.ID)
}

// ForBuyer returns the current user's own purchase history. Any authenticated
// user may view it; there is no role restriction.
func (s *OrderService) ForBuyer(currentUser *models.User) ([]models.Order, error) {
	return s.orderRepo.GetByBuyerID(currentUser.ID)
}

// roundCents rounds to two fraction digits
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
