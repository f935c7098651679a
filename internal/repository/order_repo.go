package repository

import (
	"errors"

	"github.com/farmlink/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository handles order data access
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order inside a transaction. The listing is re-read
// within the transaction and the farmer id is taken from its owner, so an
// order can never disagree with the listing it references.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, order.ListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		order.FarmerID = listing.UserID
		return tx.Create(order).Error
	})
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	result := r.db.First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}
	return &order, nil
}

// GetByFarmerID retrieves orders placed against a farmer's listings, newest first
func (r *OrderRepository) GetByFarmerID(farmerID uint) ([]models.Order, error) {
	var orders []models.Order
	result := r.db.Where("farmer_id = ?", farmerID).Order("date_ordered DESC").Find(&orders)
	return orders, result.Error
}

// GetByBuyerID retrieves orders placed by a buyer, newest first
func (r *OrderRepository) GetByBuyerID(buyerID uint) ([]models.Order, error) {
	var orders []models.Order
	result := r.db.Where("buyer_id = ?", buyerID).Order("date_ordered DESC").Find(&orders)
	return orders, result.Error
}

// Count returns the total number of orders
func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}
