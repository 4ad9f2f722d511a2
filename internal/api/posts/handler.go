package posts

import (
	"errors"
	"net/http"
	"strconv"

	"bulletin-board/database"
	"bulletin-board/internal/app/http/middleware"
	"bulletin-board/internal/domain/access"
	"bulletin-board/internal/infra/audit"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET / serves the board itself. Visible to members of either role group; a
// banned user holds no group and is sent to login instead.
func Home(c *gin.Context) {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !access.CanViewHome(ident) {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	all, err := ListPosts(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	out := HomeResponse{
		Posts:       make([]PostDTO, 0, len(all)),
		IsModerator: access.IsModerator(ident),
	}
	for _, p := range all {
		out.Posts = append(out.Posts, toPostDTO(p))
	}

	c.JSON(http.StatusOK, out)
}

// POST /post
func CreatePostHandler(c *gin.Context) {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !access.CanCreatePost(ident) {
		middleware.RedirectHome(c)
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := CreatePost(database.DB, ident.UserID, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	audit.Event(c, "New post created by %s", ident.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "Post created successfully",
		"id":      post.ID,
	})
}

// DELETE /delete_post/:id
func DeletePostHandler(c *gin.Context) {
	ident, err := middleware.CurrentIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !access.CanDeletePost(ident) {
		middleware.RedirectHome(c)
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	if err := DeletePost(database.DB, uint(postID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	audit.Event(c, "Post deleted by %s", ident.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
