package modmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

func TestMod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, m int
		want int
	}{
		{"in range", 9, 26, 9},
		{"zero", 0, 26, 0},
		{"wraps", 35, 26, 9},
		{"negative", -3, 26, 23},
		{"negative multiple", -52, 26, 0},
		{"large negative", -240, 26, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, modmath.Mod(tc.a, tc.m))
		})
	}
}

func TestGCD(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, modmath.GCD(9, 26))
	require.Equal(t, 2, modmath.GCD(4, 26))
	require.Equal(t, 13, modmath.GCD(13, 26))
	require.Equal(t, 26, modmath.GCD(0, 26))
	require.Equal(t, 1, modmath.GCD(-3, 26))
}

func TestModInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, m    int
		want    int
		wantErr bool
	}{
		{"9 mod 26", 9, 26, 3, false},
		{"7 mod 26", 7, 26, 15, false},
		{"1 mod 26", 1, 26, 1, false},
		{"25 mod 26", 25, 26, 25, false},
		{"negative normalizes", -23, 26, 9, false}, // -23 = 3 mod 26, 3*9 = 27
		{"even shares factor", 2, 26, 0, true},
		{"13 shares factor", 13, 26, 0, true},
		{"zero", 0, 26, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := modmath.ModInverse(tc.a, tc.m)
			if tc.wantErr {
				require.ErrorIs(t, err, cipher.ErrNotInvertible)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, inv)
			require.Equal(t, 1, modmath.Mod(modmath.Mod(tc.a, tc.m)*inv, tc.m))
		})
	}
}
