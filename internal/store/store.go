// Package store wraps the durable identity and session state. All reads
// that feed authorization eager-load roles and permissions so a request
// sees one consistent snapshot of a user's access.
package store

import (
	"errors"
	"time"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"

	"gorm.io/gorm"
)

// Store provides user and session access on top of gorm.
type Store struct {
	DB  *gorm.DB
	TTL time.Duration
}

// New creates a Store with the session TTL in minutes.
func New(db *gorm.DB, ttlMinutes int) *Store {
	return &Store{
		DB:  db,
		TTL: time.Duration(ttlMinutes) * time.Minute,
	}
}

// GetUserByEmail returns the user with the given (already normalized)
// email, with roles and their permissions attached, or (nil, nil) when no
// such user exists.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Preload("Roles.Permissions").
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserWithAccess returns the user by id with roles and their
// permissions attached, or (nil, nil) when no such user exists.
func (s *Store) GetUserWithAccess(id string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Preload("Roles.Permissions").
		Where("id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
