package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("Secret!23", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret!23", hash)

	assert.NoError(t, ComparePassword(hash, "Secret!23"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}

func TestCompareConstantCostNeverMatches(t *testing.T) {
	for _, plain := range []string{"", "Secret!23", "wrong-password"} {
		assert.Error(t, CompareConstantCost(plain), "input %q", plain)
	}
}
