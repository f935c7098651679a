package models

import (
	"time"
)

// Order records a buyer's purchase of a listing. FarmerID always equals the
// owner of the referenced listing; order creation derives it from the listing
// row rather than trusting the caller. Orders are immutable once created.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ListingID   uint      `gorm:"index;not null" json:"listing_id"`
	BuyerID     uint      `gorm:"index;not null" json:"buyer_id"`
	FarmerID    uint      `gorm:"index;not null" json:"farmer_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	DateOrdered time.Time `gorm:"autoCreateTime" json:"date_ordered"`

	// Relations
	Listing Listing `gorm:"foreignKey:ListingID" json:"-"`
	Buyer   User    `gorm:"foreignKey:BuyerID" json:"-"`
	Farmer  User    `gorm:"foreignKey:FarmerID" json:"-"`
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "orders"
}
