package models

import (
	"time"
)

// Listing is a farmer's advertised product. Listings have no update or
// delete operations; the catalog only grows.
type Listing struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	DatePosted  time.Time `gorm:"autoCreateTime" json:"date_posted"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Listing model
func (Listing) TableName() string {
	return "listings"
}
