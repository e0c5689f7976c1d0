package cipher

// Cipher is the contract every algorithm in this module satisfies. A cipher
// is constructed once with a validated key and is immutable afterwards, so a
// single instance may be shared across goroutines without locks.
type Cipher interface {
	// Encrypt transforms a plaintext into a ciphertext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Round-tripping holds for any input the
	// alphabet accepts, modulo each algorithm's documented padding and
	// case-normalization behaviour.
	Decrypt(ciphertext string) (string, error)
}
