package models

// Permission names a single granted capability, e.g. "rbac.manage".
type Permission struct {
	ID   string `gorm:"primaryKey;size:50" json:"id"`
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:255;not null" json:"name"`

	Roles []Role `gorm:"many2many:role_permissions" json:"-"`
}
