package service_test

import (
	"testing"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListingRequiresFarmer(t *testing.T) {
	env := newTestEnv(t)

	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	before, err := env.listings.Count()
	require.NoError(t, err)

	_, err = env.listing.Create(bob, &service.CreateListingRequest{
		Title:       "Corn",
		Description: "Fresh sweet corn from the field",
		Price:       3.50,
	})
	assert.ErrorIs(t, err, service.ErrFarmerOnly)

	after, err := env.listings.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after, "catalog size must be unchanged")
}

func TestCreateListingByFarmer(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)

	listing, err := env.listing.Create(alice, &service.CreateListingRequest{
		Title:       "Corn",
		Description: "Fresh sweet corn from the field",
		Price:       3.50,
	})
	require.NoError(t, err)
	assert.Equal(t, "Corn", listing.Title)
	assert.Equal(t, 3.50, listing.Price)
	assert.Equal(t, alice.ID, listing.UserID)
	assert.False(t, listing.DatePosted.IsZero())
}

func TestListingsViewIsAsymmetric(t *testing.T) {
	env := newTestEnv(t)

	alice := env.registerUser(t, "alice", models.AccountTypeFarmer)
	carol := env.registerUser(t, "carol", models.AccountTypeFarmer)
	bob := env.registerUser(t, "bob", models.AccountTypeBuyer)

	_, err := env.listing.Create(alice, &service.CreateListingRequest{
		Title:       "Corn",
		Description: "Fresh sweet corn from the field",
		Price:       3.50,
	})
	require.NoError(t, err)
	_, err = env.listing.Create(carol, &service.CreateListingRequest{
		Title:       "Tomatoes",
		Description: "Vine-ripened heirloom tomatoes",
		Price:       5.25,
	})
	require.NoError(t, err)

	// A farmer sees exactly their own listings
	own, err := env.listing.ListFor(alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Corn", own[0].Title)

	// Any other account type sees the full catalog
	all, err := env.listing.ListFor(bob)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// BrowseAll ignores the role entirely
	browsed, err := env.listing.BrowseAll()
	require.NoError(t, err)
	assert.Len(t, browsed, 2)
}
