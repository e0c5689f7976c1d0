package vigenere_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/vigenere"
)

func TestKnownVector(t *testing.T) {
	t.Parallel()

	v, err := vigenere.New("GIOVAN")
	require.NoError(t, err)

	ct, err := v.Encrypt("I NEVER GET ANY CREDIT!")
	require.NoError(t, err)
	require.Equal(t, "O VSQEE MMH VNL IZSYIG!", ct)

	pt, err := v.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "I NEVER GET ANY CREDIT!", pt)
}

func TestPunctuationDoesNotConsumeKey(t *testing.T) {
	t.Parallel()

	v, err := vigenere.New("AB")
	require.NoError(t, err)

	// If the '!' consumed a key letter the final A would stay A.
	ct, err := v.Encrypt("A!A")
	require.NoError(t, err)
	require.Equal(t, "A!B", ct)
}

func TestShortKeyWraps(t *testing.T) {
	t.Parallel()

	v, err := vigenere.New("KEY")
	require.NoError(t, err)

	ct, err := v.Encrypt("AAAAAA")
	require.NoError(t, err)
	require.Equal(t, "KEYKEY", ct)
}

func TestLowercaseKeyword(t *testing.T) {
	t.Parallel()

	v, err := vigenere.New("giovan")
	require.NoError(t, err)

	ct, err := v.Encrypt("I NEVER GET ANY CREDIT!")
	require.NoError(t, err)
	require.Equal(t, "O VSQEE MMH VNL IZSYIG!", ct)
}

func TestInvalidKeywords(t *testing.T) {
	t.Parallel()

	_, err := vigenere.New("")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = vigenere.New("bad key")
	require.ErrorIs(t, err, cipher.ErrUnmappedSymbol)
}
