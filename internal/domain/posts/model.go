package posts

import (
	"time"

	"bulletin-board/internal/domain/users"
)

type Post struct {
	ID      uint   `gorm:"primaryKey"`
	Content string `gorm:"type:text;not null"`

	AuthorID uint       `gorm:"not null;index:idx_posts_author_id"`
	Author   users.User `gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time
}
