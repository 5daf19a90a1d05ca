package models

import "time"

// User represents an application user. Email is stored in its normalized
// form (trimmed, lowercased); lookups are exact-match against that form.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	Roles    []Role    `gorm:"many2many:user_roles" json:"-"`
	Sessions []Session `json:"-"`
}

// EffectivePermissions returns the union of permission codes reachable
// through the user's roles: roles in stored order, permissions in stored
// order within each role, each code kept the first time it is seen.
func (u *User) EffectivePermissions() []Permission {
	seen := make(map[string]struct{})
	perms := make([]Permission, 0)
	for _, role := range u.Roles {
		for _, perm := range role.Permissions {
			if _, ok := seen[perm.Code]; ok {
				continue
			}
			seen[perm.Code] = struct{}{}
			perms = append(perms, perm)
		}
	}
	return perms
}
