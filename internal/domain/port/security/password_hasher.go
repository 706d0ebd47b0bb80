package security

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a salted hash of the plain password
	Hash(password string) (string, error)

	// Compare checks a plain password against a stored hash.
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the password does not match
	Compare(hash, password string) error
}
