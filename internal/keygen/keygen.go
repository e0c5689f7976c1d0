package keygen

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

// KeyedAlphabet scrambles A-Z with a keyword: the keyword's letters appear
// first in order of first use, followed by the remaining letters in
// alphabetical order. A keyword of "alphabet" yields "alphbetcdfgijkmnoqrsuvwxyz".
// Non-alphabetic keyword characters fail with ErrUnmappedSymbol.
func KeyedAlphabet(keyword string, out alphabet.Case) (string, error) {
	std := alphabet.Standard()
	seen := make([]bool, std.Size())
	order := make([]int, 0, std.Size())
	for _, r := range keyword {
		i, err := std.Residue(r)
		if err != nil {
			return "", fmt.Errorf("keyword: %w", err)
		}
		if !seen[i] {
			seen[i] = true
			order = append(order, i)
		}
	}
	for i := 0; i < std.Size(); i++ {
		if !seen[i] {
			order = append(order, i)
		}
	}
	cased, err := alphabet.New(alphabet.Config{Output: out})
	if err != nil {
		return "", err
	}
	return cased.Text(order)
}

// Argon2id parameters for DeriveMatrix. Fixed: changing them changes every
// derived key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4

	// deriveAttempts bounds the search for an invertible candidate. Half
	// of all residues are odd and half of those determinants are coprime
	// with 26, so in practice a handful of attempts suffice.
	deriveAttempts = 256
)

// DeriveMatrix derives an n x n Hill key matrix from a passphrase. Key
// bytes come from argon2id over the salt with an attempt counter appended;
// candidates are reduced mod 26 and re-derived until one passes the
// invertibility gate. The result feeds hill.KeyConfig.Matrix directly.
func DeriveMatrix(passphrase string, salt []byte, n int) ([][]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("dimension %d, need at least 2: %w", n, cipher.ErrInvalidKey)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("empty salt: %w", cipher.ErrInvalidKey)
	}
	const m = 26

	for attempt := 0; attempt < deriveAttempts; attempt++ {
		framed := make([]byte, 0, len(salt)+1)
		framed = append(framed, salt...)
		framed = append(framed, byte(attempt))

		raw := argon2.IDKey([]byte(passphrase), framed, argonTime, argonMemory, argonThreads, uint32(n*n))
		cells := make([]int, n*n)
		for i, b := range raw {
			cells[i] = int(b) % m
		}
		mx, err := modmath.NewFromSlice(n, cells)
		if err != nil {
			return nil, err
		}
		if modmath.GCD(mx.Det(m), m) != 1 {
			continue
		}
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = mx.Row(i)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("no invertible matrix in %d attempts: %w", deriveAttempts, cipher.ErrNotInvertible)
}
