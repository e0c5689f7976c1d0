// Package keygen produces key material for the ciphers in this module.
//
// Contents
//
//   - KeyedAlphabet, the classical scrambled alphabet built from a keyword
//     (keyword letters first, deduplicated, then the rest of A-Z)
//   - DeriveMatrix, a deterministic passphrase-to-Hill-key derivation
//     using argon2id
//
// # Notes
//
// DeriveMatrix exists so a Hill key can be remembered as a passphrase
// instead of a matrix. It is deterministic for a given passphrase, salt and
// dimension; the salt is public framing, not a secret, and the usual
// caveat applies — none of this is modern cryptography.
package keygen
