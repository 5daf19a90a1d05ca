package util

import (
	"fmt"
	"strings"
)

// LowerTrim normalizes an email for storage and lookup: surrounding
// whitespace removed, lowercased. Lookups are exact-match on this form.
func LowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeEmail normalizes and minimally validates an email address.
// The check is deliberately loose (exactly one @, non-empty local and
// domain parts) so internal domains like admin@sgp.local pass.
func NormalizeEmail(email string) (string, error) {
	email = LowerTrim(email)
	if email == "" {
		return "", fmt.Errorf("email is empty")
	}
	if strings.Count(email, "@") != 1 {
		return "", fmt.Errorf("email must contain exactly one @")
	}
	local, domain, _ := strings.Cut(email, "@")
	if local == "" {
		return "", fmt.Errorf("email local part is empty")
	}
	if domain == "" {
		return "", fmt.Errorf("email domain part is empty")
	}
	return email, nil
}
