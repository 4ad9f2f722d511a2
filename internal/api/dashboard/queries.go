package dashboard

import (
	"bulletin-board/internal/domain/posts"
	"bulletin-board/internal/domain/users"

	"gorm.io/gorm"
)

func PostCount(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&posts.Post{}).Count(&n).Error
	return n, err
}

func UserCount(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&users.User{}).Count(&n).Error
	return n, err
}

type AuthorCount struct {
	Username string `json:"username"`
	Posts    int64  `json:"posts"`
}

// PostsPerAuthor groups posts by author. Authors with zero posts simply do
// not appear; an empty board yields an empty slice.
func PostsPerAuthor(db *gorm.DB) ([]AuthorCount, error) {
	counts := []AuthorCount{}
	err := db.
		Table("posts").
		Select("users.username, COUNT(posts.id) AS posts").
		Joins("JOIN users ON users.id = posts.author_id").
		Group("users.username").
		Order("users.username").
		Scan(&counts).Error
	return counts, err
}

type GroupCount struct {
	Name  string `json:"name"`
	Users int64  `json:"users"`
}

// UsersPerGroup groups memberships by group, one entry per group with at
// least one member.
func UsersPerGroup(db *gorm.DB) ([]GroupCount, error) {
	counts := []GroupCount{}
	err := db.
		Table("groups").
		Select("groups.name, COUNT(user_groups.user_id) AS users").
		Joins("JOIN user_groups ON user_groups.group_id = groups.id").
		Group("groups.name").
		Order("groups.name").
		Scan(&counts).Error
	return counts, err
}
