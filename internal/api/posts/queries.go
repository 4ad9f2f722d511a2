package posts

import (
	"bulletin-board/internal/domain/posts"

	"gorm.io/gorm"
)

func ListPosts(db *gorm.DB) ([]posts.Post, error) {
	var out []posts.Post
	err := db.
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func CreatePost(db *gorm.DB, authorID uint, content string) (posts.Post, error) {
	post := posts.Post{
		Content:  content,
		AuthorID: authorID,
	}
	if err := db.Create(&post).Error; err != nil {
		return posts.Post{}, err
	}
	return post, nil
}

// DeletePost removes one post by id. A missing id surfaces as
// gorm.ErrRecordNotFound so the handler can answer 404.
func DeletePost(db *gorm.DB, postID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var post posts.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
