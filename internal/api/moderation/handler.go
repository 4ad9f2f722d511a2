package moderation

import (
	"errors"
	"net/http"
	"strconv"

	"bulletin-board/database"
	"bulletin-board/internal/app/http/middleware"
	"bulletin-board/internal/domain/users"
	"bulletin-board/internal/infra/audit"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// All routes in this package sit behind middleware.RequireModerator, which
// redirects non-moderators home before any target is looked up.

func targetFromPath(c *gin.Context) (users.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return users.User{}, false
	}

	var target users.User
	if err := database.DB.First(&target, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		}
		return users.User{}, false
	}
	return target, true
}

// GET /ban_user/:id returns the confirmation context for the ban page.
func GetBanTarget(c *gin.Context) {
	target, ok := targetFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_to_ban": gin.H{"id": target.ID, "username": target.Username},
	})
}

// POST /ban_user/:id
func BanUser(c *gin.Context) {
	moderator, err := middleware.CurrentIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	target, ok := targetFromPath(c)
	if !ok {
		return
	}

	if err := Ban(database.DB, target.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ban user"})
		return
	}

	audit.Event(c, "User %s banned by %s", target.Username, moderator.Username)
	c.JSON(http.StatusOK, gin.H{"message": "User banned successfully"})
}

// GET /unban_user/:id returns the confirmation context for the unban page.
func GetUnbanTarget(c *gin.Context) {
	target, ok := targetFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_to_unban": gin.H{"id": target.ID, "username": target.Username},
	})
}

// POST /unban_user/:id
func UnbanUser(c *gin.Context) {
	moderator, err := middleware.CurrentIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	target, ok := targetFromPath(c)
	if !ok {
		return
	}

	if err := Unban(database.DB, target.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unban user"})
		return
	}

	audit.Event(c, "User %s unbanned by %s", target.Username, moderator.Username)
	c.JSON(http.StatusOK, gin.H{"message": "User unbanned successfully"})
}

// GET /users
func ListUsers(c *gin.Context) {
	rows, err := ListMemberships(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users_list": rows})
}
