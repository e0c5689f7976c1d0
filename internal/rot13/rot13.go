// Package rot13 implements ROT13, the Caesar cipher fixed at a shift of 13.
// ROT13 is its own inverse: applying it twice restores the input.
package rot13

import (
	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

// ROT13 is keyless; the zero-cost constructor exists so it can stand in
// anywhere the Cipher contract is expected.
type ROT13 struct {
	alpha *alphabet.Alphabet
}

var _ cipher.Cipher = (*ROT13)(nil)

// New returns a ROT13 instance.
func New() *ROT13 {
	return &ROT13{alpha: alphabet.Permissive()}
}

// Apply rotates each letter 13 places; punctuation passes through.
func (r *ROT13) Apply(text string) (string, error) {
	m := r.alpha.Size()
	return r.alpha.Substitute(text, func(x int) int {
		return modmath.Mod(x+13, m)
	})
}

// Encrypt is Apply.
func (r *ROT13) Encrypt(plaintext string) (string, error) { return r.Apply(plaintext) }

// Decrypt is Apply.
func (r *ROT13) Decrypt(ciphertext string) (string, error) { return r.Apply(ciphertext) }
