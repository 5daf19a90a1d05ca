package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/auth"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/config"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/models"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// insecureBootstrapPasswords are known-weak values that must never end up
// as the bootstrap admin password. Checked at provisioning time only.
var insecureBootstrapPasswords = map[string]struct{}{
	"":          {},
	"admin123":  {},
	"CHANGE_ME": {},
}

var seedPermissions = []models.Permission{
	{ID: "rbac.manage", Code: "rbac.manage", Name: "Manage RBAC"},
	{ID: "users.read", Code: "users.read", Name: "Read Users"},
	{ID: "users.write", Code: "users.write", Name: "Write Users"},
}

// Seed provisions the initial permissions, the admin role holding all of
// them, and the bootstrap admin user. It is idempotent: existing rows are
// left untouched, so it is safe to run on every startup.
func Seed(db *gorm.DB, cfg *config.Config) error {
	for _, perm := range seedPermissions {
		var existing models.Permission
		err := db.Where("code = ?", perm.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed: lookup permission %s: %w", perm.Code, err)
		}
		if err := db.Create(&perm).Error; err != nil {
			return fmt.Errorf("seed: create permission %s: %w", perm.Code, err)
		}
		log.Printf("seed: created permission %s", perm.Code)
	}

	var adminRole models.Role
	err := db.Where("code = ?", "admin").First(&adminRole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		adminRole = models.Role{ID: "admin", Code: "admin", Name: "Administrator"}
		if err := db.Create(&adminRole).Error; err != nil {
			return fmt.Errorf("seed: create admin role: %w", err)
		}
		var allPerms []models.Permission
		if err := db.Find(&allPerms).Error; err != nil {
			return fmt.Errorf("seed: list permissions: %w", err)
		}
		if err := db.Model(&adminRole).Association("Permissions").Append(allPerms); err != nil {
			return fmt.Errorf("seed: grant permissions to admin role: %w", err)
		}
		log.Printf("seed: created admin role with all permissions")
	} else if err != nil {
		return fmt.Errorf("seed: lookup admin role: %w", err)
	}

	return seedAdminUser(db, cfg, &adminRole)
}

func seedAdminUser(db *gorm.DB, cfg *config.Config, adminRole *models.Role) error {
	email, err := util.NormalizeEmail(cfg.Bootstrap.AdminEmail)
	if err != nil {
		return fmt.Errorf("seed: bootstrap admin email: %w", err)
	}

	var existing models.User
	err = db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed: lookup admin user: %w", err)
	}

	password := cfg.Bootstrap.AdminPassword
	if _, weak := insecureBootstrapPasswords[strings.TrimSpace(password)]; weak {
		return fmt.Errorf("seed: bootstrap admin password is insecure or unset; set bootstrap.admin_password to a strong value")
	}

	hash, err := auth.HashPassword(password, cfg.Security.BcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return fmt.Errorf("seed: bootstrap admin password exceeds the bcrypt 72-byte limit: %w", err)
		}
		return fmt.Errorf("seed: hash bootstrap admin password: %w", err)
	}

	adminUser := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("seed: create admin user: %w", err)
	}
	if err := db.Model(&adminUser).Association("Roles").Append(adminRole); err != nil {
		return fmt.Errorf("seed: assign admin role: %w", err)
	}
	log.Printf("seed: created admin user %s", email)
	return nil
}
