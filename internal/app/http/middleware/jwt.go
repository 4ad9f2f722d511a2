package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"bulletin-board/config"
	"bulletin-board/database"
	"bulletin-board/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// identityKey is where RequireModerator leaves the resolved Identity so the
// handler does not look it up twice.
const identityKey = "identity"

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}
		if userIDFloat, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", uint(userIDFloat))
		}
		c.Next()
	}
}

// RequireModerator resolves the caller's capability set and turns the
// request away before the handler touches any target resource. Authorization
// failures redirect home rather than surfacing an error page.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		ident, err := access.IdentityFor(database.DB, userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if !access.IsModerator(ident) {
			RedirectHome(c)
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RedirectHome is the uniform outcome of a denied authorization check.
func RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// CurrentIdentity returns the Identity cached by RequireModerator, or loads
// it for routes that only pass AuthMiddleware.
func CurrentIdentity(c *gin.Context) (access.Identity, error) {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(access.Identity); ok {
			return ident, nil
		}
	}
	return access.IdentityFor(database.DB, c.GetUint("user_id"))
}
