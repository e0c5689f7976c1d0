// Package hill implements the Hill cipher, a polygraphic substitution that
// encrypts fixed-size blocks of letters as vectors multiplied by an
// invertible key matrix modulo the alphabet size.
//
// Contents
//
//   - KeyConfig, the construction options (explicit matrix or keyword,
//     alphabet, padding symbol)
//   - Hill, the cipher instance with a validated key and its cached inverse
//
// # Notes
//
// Invertibility is checked once at construction: gcd(det(K), m) must be 1
// or New fails with ErrInvalidKey. Encryption pads a short final block with
// the configured filler and the padding stays in the ciphertext; stripping
// it after decryption is the caller's job, since the cipher cannot tell
// filler from genuine trailing letters.
package hill
