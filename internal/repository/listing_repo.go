package repository

import (
	"errors"

	"github.com/farmlink/internal/models"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
)

// ListingRepository handles listing data access
type ListingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create creates a new listing
func (r *ListingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

// GetByID retrieves a listing by ID
func (r *ListingRepository) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	result := r.db.First(&listing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, result.Error
	}
	return &listing, nil
}

// GetAll retrieves the full catalog, newest first
func (r *ListingRepository) GetAll() ([]models.Listing, error) {
	var listings []models.Listing
	result := r.db.Order("date_posted DESC").Find(&listings)
	return listings, result.Error
}

// GetByOwner retrieves listings owned by a user, newest first
func (r *ListingRepository) GetByOwner(userID uint) ([]models.Listing, error) {
	var listings []models.Listing
	result := r.db.Where("user_id = ?", userID).Order("date_posted DESC").Find(&listings)
	return listings, result.Error
}

// Count returns the catalog size
func (r *ListingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Listing{}).Count(&count).Error
	return count, err
}
