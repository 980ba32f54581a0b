// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and checks the studio owner's password.
// The hash is produced once by cmd/hashpassword and supplied through configuration.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error when password does not match hashedPassword.
	VerifyPassword(hashedPassword, password string) error
}
