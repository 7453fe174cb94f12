package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "two hashes of the same password must differ")

	ok, err := VerifyPassword(h1, "secret1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = VerifyPassword(h2, "secret1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := VerifyPassword(h, "wrong")
	require.NoError(t, err, "a wrong password is not a backend failure")
	require.False(t, ok)
}

func TestVerifyPassword_CorruptHash(t *testing.T) {
	t.Parallel()

	ok, err := VerifyPassword("not-a-bcrypt-hash", "secret1")
	require.Error(t, err, "a corrupt hash must surface as an error")
	require.False(t, ok)
}
