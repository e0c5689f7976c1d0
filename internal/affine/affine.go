// Package affine implements the Affine cipher, the monoalphabetic
// substitution E(x) = (a*x + b) mod 26. It degenerates to Caesar when a = 1.
package affine

import (
	"fmt"

	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

// Affine holds the key pair (a, b) and the precomputed inverse of a.
type Affine struct {
	a, b  int
	aInv  int
	alpha *alphabet.Alphabet
}

var _ cipher.Cipher = (*Affine)(nil)

// New builds an Affine cipher. Both keys must lie in 1..26 and a must be
// coprime with 26, otherwise decryption would not exist; violations fail
// with ErrInvalidKey at construction.
func New(a, b int) (*Affine, error) {
	if a < 1 || a > 26 || b < 1 || b > 26 {
		return nil, fmt.Errorf("keys (%d, %d) outside 1-26: %w", a, b, cipher.ErrInvalidKey)
	}
	alpha := alphabet.Permissive()
	aInv, err := modmath.ModInverse(a, alpha.Size())
	if err != nil {
		return nil, fmt.Errorf("key a=%d shares a factor with %d: %w", a, alpha.Size(), cipher.ErrInvalidKey)
	}
	return &Affine{a: a, b: b, aInv: aInv, alpha: alpha}, nil
}

// Encrypt substitutes each letter x with (a*x + b) mod 26.
func (af *Affine) Encrypt(plaintext string) (string, error) {
	m := af.alpha.Size()
	return af.alpha.Substitute(plaintext, func(x int) int {
		return modmath.Mod(af.a*x+af.b, m)
	})
}

// Decrypt substitutes each letter x with a^-1 * (x - b) mod 26.
func (af *Affine) Decrypt(ciphertext string) (string, error) {
	m := af.alpha.Size()
	return af.alpha.Substitute(ciphertext, func(x int) int {
		return modmath.Mod(af.aInv*(x-af.b), m)
	})
}
