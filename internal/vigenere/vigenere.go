// Package vigenere implements the Vigenère cipher, a running-key
// substitution that shifts each letter by the next letter of a repeating
// keyword. Key material advances only on alphabet letters, so punctuation
// never consumes it.
package vigenere

import (
	"fmt"

	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

// Vigenere holds the keyword mapped to residues.
type Vigenere struct {
	key   []int
	alpha *alphabet.Alphabet
}

var _ cipher.Cipher = (*Vigenere)(nil)

// New builds a Vigenère cipher. The keyword must be non-empty and wholly
// alphabetic.
func New(keyword string) (*Vigenere, error) {
	if keyword == "" {
		return nil, fmt.Errorf("empty keyword: %w", cipher.ErrInvalidKey)
	}
	alpha := alphabet.Permissive()
	key, err := alpha.Residues(keyword)
	if err != nil {
		return nil, fmt.Errorf("keyword: %w", err)
	}
	return &Vigenere{key: key, alpha: alpha}, nil
}

// Encrypt substitutes each letter x with (x + k_i) mod 26.
func (v *Vigenere) Encrypt(plaintext string) (string, error) {
	m := v.alpha.Size()
	return v.alpha.KeySubstitute(plaintext, v.key, func(x, k int) int {
		return modmath.Mod(x+k, m)
	})
}

// Decrypt substitutes each letter x with (x - k_i) mod 26.
func (v *Vigenere) Decrypt(ciphertext string) (string, error) {
	m := v.alpha.Size()
	return v.alpha.KeySubstitute(ciphertext, v.key, func(x, k int) int {
		return modmath.Mod(x-k, m)
	})
}
