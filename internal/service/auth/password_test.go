package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/GioNegri/PedagogIA2/internal/service/auth"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	verifier := auth.NewBcryptVerifier()

	hashed, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hashed)

	assert.NoError(t, verifier.Compare(hashed, "secret-password"))
	assert.Error(t, verifier.Compare(hashed, "wrong-password"))
}

func TestBcryptHashIsSaltedPerCall(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCompareWithMalformedHash(t *testing.T) {
	t.Parallel()

	verifier := auth.NewBcryptVerifier()
	assert.Error(t, verifier.Compare("not-a-hash", "anything"))
	assert.Error(t, verifier.Compare("", "anything"))
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	t.Parallel()

	// Out-of-range costs are replaced with the default, so hashing works.
	hasher := auth.NewBcryptHasher(-1)
	hashed, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, auth.NewBcryptVerifier().Compare(hashed, "pw"))
}
