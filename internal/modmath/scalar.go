package modmath

import (
	"fmt"

	"ciphercrypt/internal/cipher"
)

// Mod reduces a into the canonical residue range [0, m-1]. Unlike the %
// operator it never returns a negative value.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// ModInverse returns x such that a*x = 1 (mod m), computed with the
// extended Euclidean algorithm. It fails with ErrNotInvertible when
// gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	a = Mod(a, m)
	t, newT := 0, 1
	r, newR := m, a
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, fmt.Errorf("no inverse of %d modulo %d: %w", a, m, cipher.ErrNotInvertible)
	}
	return Mod(t, m), nil
}
