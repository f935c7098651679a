// Package policy holds the access-control predicates gating role-restricted
// operations. Every other operation requires only an authenticated user.
package policy

import (
	"github.com/farmlink/internal/models"
)

// CanCreateListing reports whether the user may add listings to the catalog.
func CanCreateListing(user *models.User) bool {
	return user != nil && user.AccountType == models.AccountTypeFarmer
}

// CanManageOrders reports whether the user may view orders placed against
// their listings.
func CanManageOrders(user *models.User) bool {
	return user != nil && user.AccountType == models.AccountTypeFarmer
}
