package hill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/hill"
)

// mustHill builds a cipher or fails the test.
func mustHill(t *testing.T, cfg hill.KeyConfig) *hill.Hill {
	t.Helper()
	h, err := hill.New(cfg)
	require.NoError(t, err)
	return h
}

func TestEncryptKnownVector(t *testing.T) {
	t.Parallel()

	// The textbook 2x2 example: det 9, gcd(9,26)=1.
	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}})
	require.Equal(t, 2, h.Dimension())
	require.True(t, h.IsInvertible())

	ct, err := h.Encrypt("HELP")
	require.NoError(t, err)
	require.Equal(t, "HIAT", ct)

	pt, err := h.Decrypt("HIAT")
	require.NoError(t, err)
	require.Equal(t, "HELP", pt)
}

func TestKeywordKey(t *testing.T) {
	t.Parallel()

	// GYBNQKURP reshapes to [[6,24,1],[13,16,10],[20,17,15]].
	h := mustHill(t, hill.KeyConfig{Keyword: "GYBNQKURP"})
	require.Equal(t, 3, h.Dimension())

	ct, err := h.Encrypt("ACT")
	require.NoError(t, err)
	require.Equal(t, "POH", ct)

	pt, err := h.Decrypt("POH")
	require.NoError(t, err)
	require.Equal(t, "ACT", pt)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{2, 4, 5}, {9, 2, 1}, {3, 17, 7}}})

	ct, err := h.Encrypt("ATTACKATDAWN")
	require.NoError(t, err)
	require.Len(t, ct, 12)

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "ATTACKATDAWN", pt)
}

func TestCaseNormalization(t *testing.T) {
	t.Parallel()

	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}})
	ct, err := h.Encrypt("help")
	require.NoError(t, err)
	require.Equal(t, "HIAT", ct)
}

func TestPadding(t *testing.T) {
	t.Parallel()

	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}})

	// "HEL" pads to "HELX"; the pad survives decryption untouched.
	ct, err := h.Encrypt("HEL")
	require.NoError(t, err)
	require.Equal(t, "HIYH", ct)

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "HELX", pt)

	// Deterministic: same input, same output.
	again, err := h.Encrypt("HEL")
	require.NoError(t, err)
	require.Equal(t, ct, again)
}

func TestCustomPaddingSymbol(t *testing.T) {
	t.Parallel()

	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}, Padding: 'Q'})
	ct, err := h.Encrypt("HEL")
	require.NoError(t, err)

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "HELQ", pt)
}

func TestInvalidKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     hill.KeyConfig
		wantErr error
	}{
		{"singular", hill.KeyConfig{Matrix: [][]int{{1, 1}, {1, 1}}}, cipher.ErrInvalidKey},
		{"det shares 2", hill.KeyConfig{Matrix: [][]int{{2, 0}, {0, 1}}}, cipher.ErrInvalidKey},
		{"det shares 13", hill.KeyConfig{Matrix: [][]int{{13, 0}, {0, 1}}}, cipher.ErrInvalidKey},
		{"not square", hill.KeyConfig{Matrix: [][]int{{1, 2, 3}, {4, 5, 6}}}, cipher.ErrInvalidKey},
		{"no key", hill.KeyConfig{}, cipher.ErrInvalidKey},
		{"both keys", hill.KeyConfig{Matrix: [][]int{{1, 0}, {0, 1}}, Keyword: "GYBN"}, cipher.ErrInvalidKey},
		{"keyword not square length", hill.KeyConfig{Keyword: "ABCDE"}, cipher.ErrInvalidKeyLength},
		{"keyword unmapped symbol", hill.KeyConfig{Keyword: "GYB!"}, cipher.ErrUnmappedSymbol},
		{"pad outside alphabet", hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}, Padding: '!'}, cipher.ErrInvalidKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := hill.New(tc.cfg)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, h)
		})
	}
}

func TestValidDeterminants(t *testing.T) {
	t.Parallel()

	// Determinants coprime with 26 must all be accepted.
	for _, det := range []int{1, 3, 5, 7} {
		_, err := hill.New(hill.KeyConfig{Matrix: [][]int{{det, 0}, {0, 1}}})
		require.NoError(t, err, "determinant %d", det)
	}
}

func TestDecryptRejectsMisalignedInput(t *testing.T) {
	t.Parallel()

	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}})
	_, err := h.Decrypt("ABC")
	require.ErrorIs(t, err, cipher.ErrInvalidCiphertextLength)
}

func TestRejectsUnmappedSymbols(t *testing.T) {
	t.Parallel()

	h := mustHill(t, hill.KeyConfig{Matrix: [][]int{{3, 3}, {2, 5}}})

	_, err := h.Encrypt("HELP ME")
	require.ErrorIs(t, err, cipher.ErrUnmappedSymbol)

	_, err = h.Decrypt("HI AT")
	require.ErrorIs(t, err, cipher.ErrUnmappedSymbol)
}
