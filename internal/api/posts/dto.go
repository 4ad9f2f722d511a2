package posts

import (
	"time"

	"bulletin-board/internal/domain/posts"
)

type PostDTO struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type HomeResponse struct {
	Posts       []PostDTO `json:"posts"`
	IsModerator bool      `json:"is_moderator"`
}

func toPostDTO(p posts.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Content:   p.Content,
		Author:    p.Author.Username,
		CreatedAt: p.CreatedAt,
	}
}
