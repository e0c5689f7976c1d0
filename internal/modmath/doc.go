// Package modmath implements the small amount of linear algebra the
// polygraphic ciphers need, over the ring of integers modulo the alphabet
// size.
//
// Contents
//
//   - Mod, GCD and ModInverse (extended Euclid) scalar helpers
//   - Matrix, an immutable square integer matrix with determinant,
//     adjugate, inverse and matrix-vector product, all modulo m
//
// # Notes
//
// Key matrices are tiny (2x2 or 3x3 in practice), so determinants use
// cofactor expansion with no attention paid to asymptotics. Every operation
// normalizes negative intermediates into [0, m-1] before further modular
// arithmetic; the off-by-m bugs that plague Hill implementations come from
// skipping exactly that step.
package modmath
