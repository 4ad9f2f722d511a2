package users

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"not null;uniqueIndex:idx_users_username"`
	Email        string  `gorm:"index:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`

	// Role groups drive coarse authorization; direct permission grants are
	// the fine-grained mechanism and are independent of groups.
	Groups      []Group      `gorm:"many2many:user_groups;constraint:OnDelete:CASCADE"`
	Permissions []Permission `gorm:"many2many:user_permissions;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
