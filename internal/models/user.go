package models

import (
	"time"
)

// AccountType partitions users into the two marketplace roles.
type AccountType string

const (
	AccountTypeFarmer AccountType = "farmer"
	AccountTypeBuyer  AccountType = "buyer"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	return t == AccountTypeFarmer || t == AccountTypeBuyer
}

// DefaultImageFile is the placeholder avatar assigned at registration.
const DefaultImageFile = "default.jpg"

// User represents a registered user. The account type is fixed at
// registration and never changes; users are never deleted.
type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Username     string      `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Email        string      `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string      `gorm:"size:255;not null" json:"-"`
	AccountType  AccountType `gorm:"size:10;not null" json:"account_type"`
	ImageFile    string      `gorm:"size:20;not null;default:'default.jpg'" json:"image_file"`
	DateJoined   time.Time   `gorm:"autoCreateTime" json:"date_joined"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsFarmer reports whether the user holds the farmer role.
func (u *User) IsFarmer() bool {
	return u.AccountType == AccountTypeFarmer
}
