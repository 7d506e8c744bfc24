package security

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	// Hash returns a salted hash of password
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and ErrInvalidCredentials otherwise
	Compare(hash, password string) error
}
