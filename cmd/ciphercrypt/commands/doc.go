// Package commands defines the ciphercrypt CLI.
//
// Commands
//
//   - hill       Hill polygraphic matrix cipher
//   - caesar     Caesar shift cipher
//   - rot13      ROT13 (self-inverse)
//   - affine     Affine cipher
//   - vigenere   Vigenère running-key cipher
//   - railfence  Rail-fence transposition
//   - keygen     Derive a Hill key matrix from a passphrase
//   - alphabet   Print a keyed (scrambled) alphabet
//
// # Implementation
//
// Every cipher command takes the message as its single argument, builds a
// validated cipher instance from its key flags, and honours the global
// --decrypt flag. Errors surface as usual cobra command failures.
package commands
