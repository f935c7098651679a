package service

import (
	"errors"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/policy"
	"github.com/farmlink/internal/repository"
)

var (
	ErrFarmerOnly = errors.New("only farmers can add listings")
)

// ListingService handles listing catalog operations
type ListingService struct {
	listingRepo *repository.ListingRepository
}

// NewListingService creates a new ListingService
func NewListingService(listingRepo *repository.ListingRepository) *ListingService {
	return &ListingService{listingRepo: listingRepo}
}

// CreateListingRequest represents the create listing request
type CreateListingRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=100"`
	Description string  `json:"description" binding:"required,min=10,max=500"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// Create persists a new listing owned by the current user. Only farmers may
// create listings.
func (s *ListingService) Create(currentUser *models.User, req *CreateListingRequest) (*models.Listing, error) {
	if !policy.CanCreateListing(currentUser) {
		return nil, ErrFarmerOnly
	}

	listing := &models.Listing{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		UserID:      currentUser.ID,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// ListFor returns the listings view for a user. Farmers see only their own
// listings; every other account type sees the full catalog. The asymmetry is
// intentional and matches the original product behavior.
func (s *ListingService) ListFor(currentUser *models.User) ([]models.Listing, error) {
	if currentUser.IsFarmer() {
		return s.listingRepo.GetByOwner(currentUser.ID)
	}
	return s.listingRepo.GetAll()
}

// BrowseAll returns the full catalog regardless of role
func (s *ListingService) BrowseAll() ([]models.Listing, error) {
	return s.listingRepo.GetAll()
}

// GetByID retrieves a single listing
func (s *ListingService) GetByID(id uint) (*models.Listing, error) {
	return s.listingRepo.GetByID(id)
}
