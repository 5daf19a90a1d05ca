package store

import (
	"errors"
	"time"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSession persists a fresh session for the user and returns the full
// record. ExpiresAt is fixed at creation; there is no sliding expiry.
// Concurrent logins by the same user each get an independent session.
func (s *Store) CreateSession(userID, userAgent, ip string) (*models.Session, error) {
	now := time.Now()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
		UserAgent: userAgent,
		IP:        ip,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetValidSession returns the session only if it is neither revoked nor
// expired. An expired, revoked or unknown id all come back as (nil, nil);
// callers must treat the cases identically.
func (s *Store) GetValidSession(id string) (*models.Session, error) {
	var session models.Session
	err := s.DB.
		Where("id = ? AND revoked_at IS NULL AND expires_at > ?", id, time.Now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// RevokeSession marks the session revoked. It is idempotent: an already
// revoked session keeps its original revocation time, and an unknown id is
// a silent no-op so logout stays safe to call repeatedly and leaks no
// existence information.
func (s *Store) RevokeSession(id string) error {
	return s.DB.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now()).Error
}
