package rot13_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ciphercrypt/internal/rot13"
)

func TestSelfInverse(t *testing.T) {
	t.Parallel()

	r := rot13.New()
	msg := "PEACE, FREEDOM AND LIBERTY!"

	once, err := r.Apply(msg)
	require.NoError(t, err)
	require.NotEqual(t, msg, once)

	twice, err := r.Apply(once)
	require.NoError(t, err)
	require.Equal(t, msg, twice)
}

func TestKnownVector(t *testing.T) {
	t.Parallel()

	r := rot13.New()
	ct, err := r.Encrypt("ABCXYZ")
	require.NoError(t, err)
	require.Equal(t, "NOPKLM", ct)

	pt, err := r.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "ABCXYZ", pt)
}
