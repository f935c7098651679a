package service_test

import (
	"testing"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/repository"
	"github.com/farmlink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderComputesTotalAndFarmer(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)
	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	listing, err := env.listing.Create(alice, &service.CreateListingRequest{
		Title:       "Corn",
		Description: "Fresh sweet corn from the field",
		Price:       3.50,
	})
	require.NoError(t, err)

	order, err := env.order.Place(bob, &service.PlaceOrderRequest{
		ListingID: listing.ID,
		Quantity:  4,
	})
	require.NoError(t, err)

	assert.Equal(t, 14.00, order.TotalPrice)
	assert.Equal(t, bob.ID, order.BuyerID)
	assert.Equal(t, alice.ID, order.FarmerID, "farmer must be the listing owner")
	assert.Equal(t, listing.ID, order.ListingID)
	assert.False(t, order.DateOrdered.IsZero())
}

func TestPlaceOrderUnknownListing(t *testing.T) {
	env := newTestEnv(t)

	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	_, err := env.order.Place(bob, &service.PlaceOrderRequest{
		ListingID: 999,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestOrderViewsPerRole(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)
	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	listing, err := env.listing.Create(alice, &service.CreateListingRequest{
		Title:       "Corn",
		Description: "Fresh sweet corn from the field",
		Price:       3.50,
	})
	require.NoError(t, err)

	_, err = env.order.Place(bob, &service.PlaceOrderRequest{
		ListingID: listing.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	// Managing incoming orders is farmer-only
	_, err = env.order.ForFarmer(bob)
	assert.ErrorIs(t, err, service.ErrManageOrdersFarmerOnly)

	incoming, err := env.order.ForFarmer(alice)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, bob.ID, incoming[0].BuyerID)

	// Purchase history needs no role
	purchases, err := env.order.ForBuyer(bob)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, 7.00, purchases[0].TotalPrice)

	// Alice has bought nothing
	purchases, err = env.order.ForBuyer(alice)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}
