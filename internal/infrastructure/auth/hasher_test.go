package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Verify("correct horse battery staple", hash))
	assert.Error(t, hasher.Verify("wrong password", hash))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	h2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestBcryptPasswordHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	assert.Error(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
}

func TestNewBcryptPasswordHasher_CostClamped(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default rather than
	// failing at hash time.
	for _, cost := range []int{0, -1, 99} {
		hasher := NewBcryptPasswordHasher(cost)
		hash, err := hasher.Hash("pw")
		require.NoError(t, err)

		actual, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, actual)
	}
}
