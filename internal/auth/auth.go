package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// Service verifies credentials against the users file.
type Service struct {
	users *FileStore
}

// NewService wires the login service to a user store.
func NewService(users *FileStore) *Service {
	return &Service{users: users}
}

// Login returns the user for the given credentials. Unknown usernames and
// wrong passwords both surface as the authentication error kind.
func (s *Service) Login(username, password string) (User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return User{}, fmt.Errorf("%w: unknown user %q", apperror.ErrAuthentication, username)
		}

		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, fmt.Errorf("%w: wrong password for %q", apperror.ErrAuthentication, username)
	}

	return user, nil
}

// Register hashes the password and appends a new user record.
func (s *Service) Register(username, password string, role Role, linkedEntityID int64) error {
	if username == "" || password == "" {
		return apperror.Validation("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.users.Append(User{
		Username:       username,
		PasswordHash:   string(hash),
		Role:           role,
		LinkedEntityID: linkedEntityID,
	})
}
