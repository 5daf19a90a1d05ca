package auth

import "errors"

// Expected failures are ordinary error values, not panics: handlers match
// on them and translate to uniform HTTP responses.
var (
	// ErrAuthenticationFailed covers every login failure (unknown email,
	// wrong password, inactive user). Callers must not distinguish the
	// cases to the client.
	ErrAuthenticationFailed = errors.New("invalid email or password")

	// ErrPasswordTooLong is returned when a plaintext password exceeds
	// the bcrypt input limit of 72 bytes.
	ErrPasswordTooLong = errors.New("password too long for bcrypt (max 72 bytes)")
)
