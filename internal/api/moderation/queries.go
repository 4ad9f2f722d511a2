package moderation

import (
	"bulletin-board/internal/domain/access"
	"bulletin-board/internal/domain/users"

	"gorm.io/gorm"
)

// Ban strips the target of both role groups. Removal from a group the target
// never joined is a deliberate no-op, so banning an already-banned user is
// safe and leaves the same end state: no role groups at all. The
// check-then-remove runs in one transaction so two moderators acting on the
// same target cannot lose each other's update.
func Ban(db *gorm.DB, targetID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var target users.User
		if err := tx.Preload("Groups").First(&target, targetID).Error; err != nil {
			return err
		}

		for _, name := range []string{access.GroupDefault, access.GroupMod} {
			var member *users.Group
			for i := range target.Groups {
				if target.Groups[i].Name == name {
					member = &target.Groups[i]
					break
				}
			}
			if member == nil {
				// not a member: nothing to remove
				continue
			}
			if err := tx.Model(&target).Association("Groups").Delete(member); err != nil {
				return err
			}
		}
		return nil
	})
}

// Unban puts the target back into the default group. Idempotent: an existing
// membership is left alone, never duplicated.
func Unban(db *gorm.DB, targetID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var target users.User
		if err := tx.Preload("Groups").First(&target, targetID).Error; err != nil {
			return err
		}

		for _, g := range target.Groups {
			if g.Name == access.GroupDefault {
				return nil
			}
		}

		var def users.Group
		if err := tx.Where("name = ?", access.GroupDefault).First(&def).Error; err != nil {
			return err
		}
		return tx.Model(&target).Association("Groups").Append(&def)
	})
}

// UserRow is one (user, membership) pair. Join semantics: a groupless user
// yields a single row with a null group, a user in several groups yields one
// row per group.
type UserRow struct {
	Username  string  `json:"username"`
	GroupName *string `json:"group"`
	ID        uint    `json:"id"`
}

func ListMemberships(db *gorm.DB) ([]UserRow, error) {
	rows := []UserRow{}
	err := db.
		Table("users").
		Select("users.username, groups.name AS group_name, users.id").
		Joins("LEFT JOIN user_groups ON user_groups.user_id = users.id").
		Joins("LEFT JOIN groups ON groups.id = user_groups.group_id").
		Order("users.id, groups.name").
		Scan(&rows).Error
	return rows, err
}
