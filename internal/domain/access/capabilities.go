package access

import (
	"bulletin-board/internal/domain/users"

	"gorm.io/gorm"
)

// IdentityFor maps a user id to its capability set: group names plus the
// union of direct and group-inherited permission codes.
func IdentityFor(db *gorm.DB, userID uint) (Identity, error) {
	var u users.User
	err := db.
		Preload("Groups.Permissions").
		Preload("Permissions").
		First(&u, userID).Error
	if err != nil {
		return Identity{}, err
	}

	id := Identity{
		UserID:   u.ID,
		Username: u.Username,
	}

	seen := map[string]bool{}
	addPerm := func(code string) {
		if !seen[code] {
			seen[code] = true
			id.Permissions = append(id.Permissions, code)
		}
	}

	for _, g := range u.Groups {
		id.Groups = append(id.Groups, g.Name)
		for _, p := range g.Permissions {
			addPerm(p.Code)
		}
	}
	for _, p := range u.Permissions {
		addPerm(p.Code)
	}

	return id, nil
}
