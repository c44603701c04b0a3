package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "correct horse battery"))
}

func TestHashPasswordClampsAbsurdCost(t *testing.T) {
	// Out-of-range costs must not make hashing fail.
	hash, err := HashPassword("secret-enough", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
