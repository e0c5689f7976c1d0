// Package railfence implements the rail-fence transposition cipher: the
// message is written in a zig-zag across a number of rails and read off
// rail by rail. Being a pure transposition it reorders every rune,
// whitespace and punctuation included, and needs no alphabet.
package railfence

import (
	"fmt"

	"ciphercrypt/internal/cipher"
)

// Railfence holds the rail count.
type Railfence struct {
	rails int
}

var _ cipher.Cipher = (*Railfence)(nil)

// New builds a rail-fence cipher. Fewer than two rails leaves the message
// untouched, so such keys are rejected.
func New(rails int) (*Railfence, error) {
	if rails < 2 {
		return nil, fmt.Errorf("rail count %d, need at least 2: %w", rails, cipher.ErrInvalidKey)
	}
	return &Railfence{rails: rails}, nil
}

// railAt returns the rail the i-th rune lands on while zig-zagging.
func (r *Railfence) railAt(i int) int {
	cycle := 2 * (r.rails - 1)
	pos := i % cycle
	if pos < r.rails {
		return pos
	}
	return cycle - pos
}

// Encrypt writes the message along the zig-zag and reads it rail by rail.
func (r *Railfence) Encrypt(plaintext string) (string, error) {
	runes := []rune(plaintext)
	rails := make([][]rune, r.rails)
	for i, ch := range runes {
		rail := r.railAt(i)
		rails[rail] = append(rails[rail], ch)
	}
	out := make([]rune, 0, len(runes))
	for _, rail := range rails {
		out = append(out, rail...)
	}
	return string(out), nil
}

// Decrypt rebuilds the rails from the ciphertext and reads the zig-zag back.
func (r *Railfence) Decrypt(ciphertext string) (string, error) {
	runes := []rune(ciphertext)

	// Length of each rail under the zig-zag for this message length.
	counts := make([]int, r.rails)
	for i := range runes {
		counts[r.railAt(i)]++
	}

	// Slice the ciphertext into rails in reading order.
	rails := make([][]rune, r.rails)
	off := 0
	for rail, n := range counts {
		rails[rail] = runes[off : off+n]
		off += n
	}

	// Walk the zig-zag again, consuming each rail in turn.
	taken := make([]int, r.rails)
	out := make([]rune, 0, len(runes))
	for i := range runes {
		rail := r.railAt(i)
		out = append(out, rails[rail][taken[rail]])
		taken[rail]++
	}
	return string(out), nil
}
