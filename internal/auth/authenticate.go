package auth

import (
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/store"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/util"
)

// Authenticate validates an email/password pair and returns the matching
// active user with roles and permissions attached. Every failure mode
// (unknown email, inactive user, wrong password) yields the same
// ErrAuthenticationFailed so callers cannot be used as an account oracle.
// It has no side effects; session creation is the caller's next step.
func Authenticate(s *store.Store, email, password string) (*models.User, error) {
	email = util.LowerTrim(email)

	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthenticationFailed
	}
	if !user.IsActive {
		return nil, ErrAuthenticationFailed
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}
