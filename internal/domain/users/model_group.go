package users

import "time"

// Group is a named role tag. Members inherit the group's permissions on top
// of any permissions granted to them directly.
type Group struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex:idx_groups_name"`

	Permissions []Permission `gorm:"many2many:group_permissions;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// Permission is a named capability, e.g. "add_post".
type Permission struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"not null;uniqueIndex:idx_permissions_code"`
	Description string

	CreatedAt time.Time
}
