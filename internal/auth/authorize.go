package auth

import "github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"

// Decision is the outcome of an authorization check.
type Decision struct {
	// Missing lists the required permission codes the user lacks, in the
	// order they were required. Empty means allow.
	Missing []string
}

// Allowed reports whether the check passed.
func (d Decision) Allowed() bool {
	return len(d.Missing) == 0
}

// Authorize decides whether a user holds every required permission code.
// Pure function: inactive users must already have been rejected during
// session resolution.
func Authorize(user *models.User, required ...string) Decision {
	effective := make(map[string]struct{})
	for _, perm := range user.EffectivePermissions() {
		effective[perm.Code] = struct{}{}
	}

	var missing []string
	for _, code := range required {
		if _, ok := effective[code]; !ok {
			missing = append(missing, code)
		}
	}
	return Decision{Missing: missing}
}
