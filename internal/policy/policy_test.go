package policy_test

import (
	"testing"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/policy"
	"github.com/stretchr/testify/assert"
)

func TestRolePredicates(t *testing.T) {
	farmer := &models.User{ID: 1, AccountType: models.AccountTypeFarmer}
	buyer := &models.User{ID: 2, AccountType: models.AccountTypeBuyer}

	assert.True(t, policy.CanCreateListing(farmer))
	assert.False(t, policy.CanCreateListing(buyer))
	assert.False(t, policy.CanCreateListing(nil))

	assert.True(t, policy.CanManageOrders(farmer))
	assert.False(t, policy.CanManageOrders(buyer))
	assert.False(t, policy.CanManageOrders(nil))
}
