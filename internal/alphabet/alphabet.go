package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"ciphercrypt/internal/cipher"
)

// Case selects the letter case of mapper output.
type Case int

const (
	Upper Case = iota
	Lower
)

const latin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Config holds the options an Alphabet is built from.
type Config struct {
	Letters     string // symbol set in residue order; defaults to A-Z
	Output      Case   // case of emitted characters
	PassThrough bool   // keep unmapped runes in place instead of rejecting them
}

// Alphabet is a total bijection between a fixed symbol set and the residues
// 0..m-1, where m is the symbol count. Immutable once constructed.
type Alphabet struct {
	upper []rune
	lower []rune
	index map[rune]int
	out   Case
	pass  bool
}

// New builds an Alphabet from cfg. It fails if the symbol set contains a
// duplicate after case folding, since the residue mapping must stay a
// bijection.
func New(cfg Config) (*Alphabet, error) {
	letters := cfg.Letters
	if letters == "" {
		letters = latin
	}
	runes := []rune(letters)
	a := &Alphabet{
		upper: make([]rune, len(runes)),
		lower: make([]rune, len(runes)),
		index: make(map[rune]int, 2*len(runes)),
		out:   cfg.Output,
		pass:  cfg.PassThrough,
	}
	for i, r := range runes {
		u, l := unicode.ToUpper(r), unicode.ToLower(r)
		if _, dup := a.index[u]; dup {
			return nil, fmt.Errorf("alphabet: duplicate symbol %q: %w", r, cipher.ErrInvalidKey)
		}
		a.upper[i], a.lower[i] = u, l
		a.index[u] = i
		a.index[l] = i
	}
	return a, nil
}

// Standard returns the strict A-Z alphabet: unmapped input is rejected and
// output is upper-case. This is the mapper the block ciphers use.
func Standard() *Alphabet {
	a, _ := New(Config{})
	return a
}

// Permissive returns the A-Z alphabet with pass-through enabled, so spaces
// and punctuation survive substitution unchanged.
func Permissive() *Alphabet {
	a, _ := New(Config{PassThrough: true})
	return a
}

// Size returns m, the symbol count and arithmetic modulus.
func (a *Alphabet) Size() int { return len(a.upper) }

// PassThrough reports whether unmapped runes are kept rather than rejected.
func (a *Alphabet) PassThrough() bool { return a.pass }

// Contains reports whether r maps to a residue under case folding.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Residue maps a single rune to its residue. Unmapped runes fail with
// ErrUnmappedSymbol regardless of the pass-through policy; pass-through is
// a property of whole-text substitution, not of the point lookup.
func (a *Alphabet) Residue(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", r, cipher.ErrUnmappedSymbol)
	}
	return i, nil
}

// Rune maps a residue back to a character in the configured output case.
func (a *Alphabet) Rune(residue int) (rune, error) {
	if residue < 0 || residue >= len(a.upper) {
		return 0, fmt.Errorf("residue %d outside [0, %d): %w", residue, len(a.upper), cipher.ErrOutOfRange)
	}
	if a.out == Lower {
		return a.lower[residue], nil
	}
	return a.upper[residue], nil
}

// Residues maps an entire text to its residue sequence, rejecting the first
// unmapped rune. Pass-through is deliberately not honoured here: callers of
// Residues are block ciphers, and an unmapped rune passed through would
// corrupt block alignment.
func (a *Alphabet) Residues(text string) ([]int, error) {
	out := make([]int, 0, len(text))
	for _, r := range text {
		i, err := a.Residue(r)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Text maps a residue sequence back to a string.
func (a *Alphabet) Text(residues []int) (string, error) {
	var b strings.Builder
	b.Grow(len(residues))
	for _, res := range residues {
		r, err := a.Rune(res)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Substitute rewrites text rune by rune, replacing each mapped rune with
// the character at calc(residue). Unmapped runes are kept as-is under
// pass-through and rejected otherwise.
func (a *Alphabet) Substitute(text string, calc func(residue int) int) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		i, ok := a.index[r]
		if !ok {
			if !a.pass {
				return "", fmt.Errorf("symbol %q: %w", r, cipher.ErrUnmappedSymbol)
			}
			b.WriteRune(r)
			continue
		}
		out, err := a.Rune(calc(i))
		if err != nil {
			return "", err
		}
		b.WriteRune(out)
	}
	return b.String(), nil
}

// KeySubstitute rewrites text like Substitute, feeding calc the next key
// residue alongside each mapped rune. The key position advances only on
// mapped runes, so punctuation under pass-through does not consume key
// material, and wraps around when the key is exhausted.
func (a *Alphabet) KeySubstitute(text string, key []int, calc func(residue, keyResidue int) int) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("empty keystream: %w", cipher.ErrInvalidKey)
	}
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, r := range text {
		i, ok := a.index[r]
		if !ok {
			if !a.pass {
				return "", fmt.Errorf("symbol %q: %w", r, cipher.ErrUnmappedSymbol)
			}
			b.WriteRune(r)
			continue
		}
		out, err := a.Rune(calc(i, key[pos%len(key)]))
		if err != nil {
			return "", err
		}
		b.WriteRune(out)
		pos++
	}
	return b.String(), nil
}
