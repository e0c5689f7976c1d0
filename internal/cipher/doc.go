// Package cipher defines the contract shared by every algorithm in
// ciphercrypt, along with the error set callers match against.
//
// Contents
//
//   - Cipher, the encrypt/decrypt interface every algorithm implements
//   - Sentinel errors for key validation, symbol mapping and block
//     alignment failures
//
// # Notes
//
// All algorithms here are classical, pre-computer ciphers. They are trivially
// breakable and exist for study and amusement; never use them to protect
// data of real value.
package cipher
