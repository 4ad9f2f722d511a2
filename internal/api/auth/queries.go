package auth

import (
	"bulletin-board/internal/domain/access"
	"bulletin-board/internal/domain/users"

	"gorm.io/gorm"
)

// CreateAccount persists a new user and grants default-group membership in
// the same transaction. A registration that cannot land in the default group
// does not happen at all; the new user must be able to view home immediately.
func CreateAccount(db *gorm.DB, user *users.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		var def users.Group
		if err := tx.Where("name = ?", access.GroupDefault).First(&def).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("Groups").Append(&def)
	})
}
