package crypto_test

import (
	"testing"

	"github.com/farmlink/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := crypto.HashPassword("password1")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", hash)
	assert.True(t, crypto.CheckPassword("password1", hash))
	assert.False(t, crypto.CheckPassword("password2", hash))
	assert.False(t, crypto.CheckPassword("password1", "not-a-hash"))
}
