package model

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password.
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. An error means the hash
	// itself could not be used, never a plain mismatch.
	Verify(password, hash string) (bool, error)
}
