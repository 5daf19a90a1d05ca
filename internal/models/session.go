package models

import "time"

// Session is a durable, time-bounded proof of a successful login,
// referenced by the opaque UUID carried in the session cookie.
// ExpiresAt is set once at creation and never extended; RevokedAt, once
// set, is never cleared.
type Session struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:36;index;not null" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `gorm:"index;not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
	UserAgent string     `gorm:"size:512" json:"user_agent,omitempty"`
	IP        string     `gorm:"size:45" json:"ip,omitempty"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Valid reports whether the session may still authenticate a request:
// not revoked and not expired at the given instant.
func (s *Session) Valid(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}
