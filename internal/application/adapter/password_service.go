// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService handles password hashing for user registration.
type PasswordService interface {
	// Hash generates a hash from a plain-text password.
	Hash(password string) (string, error)
}
