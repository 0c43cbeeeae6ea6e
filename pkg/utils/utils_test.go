package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "hr@acme.io", NormalizeEmail("  HR@Acme.IO "))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Acme Corporation", "acme"))
	assert.True(t, ContainsFold("Backend Engineer", "END ENG"))
	assert.False(t, ContainsFold("Acme", "Globex"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "50!%", EscapeLike("50%"))
	assert.Equal(t, "go!_dev", EscapeLike("go_dev"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
	assert.Equal(t, "plain", EscapeLike("plain"))
	assert.Equal(t, "%50!% off%", ContainsPattern("  50% OFF "))
}
