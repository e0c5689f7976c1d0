package hill

import (
	"fmt"

	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/cipher"
	"ciphercrypt/internal/modmath"
)

// DefaultPadding fills the final short block during encryption.
const DefaultPadding = 'X'

// KeyConfig holds the options a Hill cipher is built from. Exactly one of
// Matrix and Keyword must be set.
type KeyConfig struct {
	// Matrix is an explicit n x n key, row-major. Entries are reduced
	// modulo the alphabet size.
	Matrix [][]int

	// Keyword derives the key instead: its letters are mapped to residues
	// and reshaped row-major into the smallest square that exactly fits,
	// so its length must be a perfect square (4, 9, 16, ...).
	Keyword string

	// Alphabet defaults to the strict A-Z mapper.
	Alphabet *alphabet.Alphabet

	// Padding is the filler symbol for a short final block. Defaults to
	// DefaultPadding. It must be a symbol of the alphabet.
	Padding rune
}

// Hill is an immutable cipher instance. The inverse matrix is computed at
// construction, so instances are safe for concurrent use.
type Hill struct {
	alpha *alphabet.Alphabet
	key   modmath.Matrix
	inv   modmath.Matrix
	pad   int
}

var _ cipher.Cipher = (*Hill)(nil)

// New validates cfg and builds the cipher. A key whose determinant shares a
// factor with the alphabet size is rejected with ErrInvalidKey; a keyword
// of non-square length is rejected with ErrInvalidKeyLength. A rejected key
// produces no instance.
func New(cfg KeyConfig) (*Hill, error) {
	alpha := cfg.Alphabet
	if alpha == nil {
		alpha = alphabet.Standard()
	}
	m := alpha.Size()

	var (
		key modmath.Matrix
		err error
	)
	switch {
	case cfg.Matrix != nil && cfg.Keyword != "":
		return nil, fmt.Errorf("both explicit matrix and keyword supplied: %w", cipher.ErrInvalidKey)
	case cfg.Matrix != nil:
		rows := make([][]int, len(cfg.Matrix))
		for i, row := range cfg.Matrix {
			rows[i] = make([]int, len(row))
			for j, v := range row {
				rows[i][j] = modmath.Mod(v, m)
			}
		}
		key, err = modmath.New(rows)
		if err != nil {
			return nil, err
		}
	case cfg.Keyword != "":
		res, rerr := alpha.Residues(cfg.Keyword)
		if rerr != nil {
			return nil, rerr
		}
		n := squareRoot(len(res))
		if n == 0 {
			return nil, fmt.Errorf("keyword of %d symbols cannot form a square matrix: %w",
				len(res), cipher.ErrInvalidKeyLength)
		}
		key, err = modmath.NewFromSlice(n, res)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no key material supplied: %w", cipher.ErrInvalidKey)
	}

	if det := key.Det(m); modmath.GCD(det, m) != 1 {
		return nil, fmt.Errorf("determinant %d shares a factor with %d: %w", det, m, cipher.ErrInvalidKey)
	}
	inv, err := key.Inverse(m)
	if err != nil {
		// Unreachable after the gcd gate above.
		return nil, err
	}

	pad := cfg.Padding
	if pad == 0 {
		pad = DefaultPadding
	}
	padRes, err := alpha.Residue(pad)
	if err != nil {
		return nil, fmt.Errorf("padding symbol %q not in alphabet: %w", pad, cipher.ErrInvalidKey)
	}

	return &Hill{alpha: alpha, key: key, inv: inv, pad: padRes}, nil
}

// Dimension returns the block size n of the key matrix.
func (h *Hill) Dimension() int { return h.key.Dim() }

// IsInvertible always reports true: non-invertible keys never survive New.
func (h *Hill) IsInvertible() bool { return true }

// Encrypt maps the plaintext to residues, pads the final block with the
// configured filler if needed, and multiplies each block by the key matrix.
// Every character must belong to the alphabet.
func (h *Hill) Encrypt(plaintext string) (string, error) {
	res, err := h.alpha.Residues(plaintext)
	if err != nil {
		return "", err
	}
	n := h.key.Dim()
	for len(res)%n != 0 {
		res = append(res, h.pad)
	}
	return h.transform(h.key, res)
}

// Decrypt multiplies each ciphertext block by the cached inverse matrix.
// The input must map to a residue sequence whose length is a multiple of
// the key dimension; padding added by Encrypt is emitted as-is.
func (h *Hill) Decrypt(ciphertext string) (string, error) {
	res, err := h.alpha.Residues(ciphertext)
	if err != nil {
		return "", err
	}
	if len(res)%h.key.Dim() != 0 {
		return "", fmt.Errorf("%d symbols with block size %d: %w",
			len(res), h.key.Dim(), cipher.ErrInvalidCiphertextLength)
	}
	return h.transform(h.inv, res)
}

// transform runs the block driver: partition res into n-length blocks,
// multiply each by key, and map the reassembled stream back to text.
func (h *Hill) transform(key modmath.Matrix, res []int) (string, error) {
	n := key.Dim()
	m := h.alpha.Size()
	out := make([]int, 0, len(res))
	for i := 0; i < len(res); i += n {
		block, err := key.MulVec(res[i:i+n], m)
		if err != nil {
			return "", err
		}
		out = append(out, block...)
	}
	return h.alpha.Text(out)
}

// squareRoot returns n with n*n == length, or 0 when length is not a
// positive perfect square.
func squareRoot(length int) int {
	for n := 1; n*n <= length; n++ {
		if n*n == length {
			return n
		}
	}
	return 0
}
