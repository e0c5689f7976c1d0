package cipher

import "errors"

// Sentinel errors returned across the module. Constructors and transform
// methods wrap these with fmt.Errorf("...: %w", Err) where extra context
// helps; callers match with errors.Is.
var (
	// ErrInvalidKey reports a key that fails validation at construction:
	// a non-square matrix, a shift outside its range, a matrix whose
	// determinant shares a factor with the alphabet size, and so on.
	// Construction fails and no cipher instance is produced.
	ErrInvalidKey = errors.New("cipher: invalid key")

	// ErrInvalidKeyLength reports a keyword whose length cannot form the
	// key shape the algorithm needs (for Hill, a perfect square).
	ErrInvalidKeyLength = errors.New("cipher: invalid key length")

	// ErrUnmappedSymbol reports an input character outside the configured
	// alphabet when pass-through is disabled. Characters are never
	// silently dropped.
	ErrUnmappedSymbol = errors.New("cipher: unmapped symbol")

	// ErrInvalidCiphertextLength reports a decrypt input whose mapped
	// length is not a multiple of the cipher's block size.
	ErrInvalidCiphertextLength = errors.New("cipher: ciphertext length not a multiple of block size")

	// ErrNotInvertible reports a value with no multiplicative inverse
	// modulo the alphabet size. Surfacing it after a cipher was
	// successfully constructed indicates a bug in construction-time
	// validation, not a caller mistake.
	ErrNotInvertible = errors.New("cipher: value not invertible modulo alphabet size")

	// ErrOutOfRange reports a residue outside [0, m-1]. Internal
	// invariants keep this unreachable in practice; it exists so the
	// mapper can fail loudly instead of emitting garbage.
	ErrOutOfRange = errors.New("cipher: residue out of range")
)
