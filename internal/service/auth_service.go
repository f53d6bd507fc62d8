package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks logins against the single configured admin credential
// pair. The password is hashed once at construction so the plaintext is not
// held for the life of the process.
type AuthService struct {
	username     string
	passwordHash []byte
}

func NewAuthService(username, password string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthService{username: username, passwordHash: hash}, nil
}

// Verify reports whether the pair matches the configured admin credentials.
// It does not reveal which of the two fields was wrong.
func (s *AuthService) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return userOK && passOK
}
