package routes

import (
	authapi "bulletin-board/internal/api/auth"
	"bulletin-board/internal/api/dashboard"
	"bulletin-board/internal/api/moderation"
	postsapi "bulletin-board/internal/api/posts"
	"bulletin-board/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())

	auth.GET("/", postsapi.Home)
	auth.POST("/post", postsapi.CreatePostHandler)
	auth.DELETE("/delete_post/:id", postsapi.DeletePostHandler)
	auth.GET("/dashboard", dashboard.Dashboard)
	auth.POST("/change-password", authapi.ChangePassword)

	// Moderators: the gate runs before any target user is loaded
	mod := auth.Group("/")
	mod.Use(middleware.RequireModerator())
	mod.GET("/users", moderation.ListUsers)
	mod.GET("/ban_user/:id", moderation.GetBanTarget)
	mod.POST("/ban_user/:id", moderation.BanUser)
	mod.GET("/unban_user/:id", moderation.GetUnbanTarget)
	mod.POST("/unban_user/:id", moderation.UnbanUser)
}
