// Package caesar implements the Caesar shift cipher, a monoalphabetic
// substitution that rotates each letter a fixed distance through the
// alphabet.
package caesar

import (
	"fmt"

	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

// Caesar shifts letters by a fixed amount; punctuation passes through.
type Caesar struct {
	shift int
	alpha *alphabet.Alphabet
}

var _ cipher.Cipher = (*Caesar)(nil)

// New builds a Caesar cipher. The shift must lie in 1..26; a shift of 26 is
// the identity but is accepted for historical fidelity.
func New(shift int) (*Caesar, error) {
	if shift < 1 || shift > 26 {
		return nil, fmt.Errorf("shift %d outside 1-26: %w", shift, cipher.ErrInvalidKey)
	}
	return &Caesar{shift: shift, alpha: alphabet.Permissive()}, nil
}

// Encrypt substitutes each letter x with (x + shift) mod 26.
func (c *Caesar) Encrypt(plaintext string) (string, error) {
	m := c.alpha.Size()
	return c.alpha.Substitute(plaintext, func(x int) int {
		return modmath.Mod(x+c.shift, m)
	})
}

// Decrypt substitutes each letter x with (x - shift) mod 26.
func (c *Caesar) Decrypt(ciphertext string) (string, error) {
	m := c.alpha.Size()
	return c.alpha.Substitute(ciphertext, func(x int) int {
		return modmath.Mod(x-c.shift, m)
	})
}
