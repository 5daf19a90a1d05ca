package models

// Role groups permissions; users are granted roles, never permissions
// directly.
type Role struct {
	ID   string `gorm:"primaryKey;size:50" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:255;not null" json:"name"`

	Users       []User       `gorm:"many2many:user_roles" json:"-"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"-"`
}
