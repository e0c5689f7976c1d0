// Package alphabet maps text to residues modulo the alphabet size and back.
//
// Contents
//
//   - Alphabet, an immutable symbol-to-residue bijection with a fixed
//     output case and a pass-through policy for unmapped runes
//   - Substitute and KeySubstitute, the shared engines behind the
//     monoalphabetic and running-key ciphers
//
// # Notes
//
// Mapping is case-insensitive on input; output case is chosen by
// configuration, never inferred from the input. An Alphabet is built once
// and shared read-only across ciphers and goroutines.
package alphabet
