package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/models"
)

// Authenticator resolves a bearer token to an active account.
// services.AccountService satisfies it.
type Authenticator interface {
	Authenticate(tokenKey string) (*models.User, error)
}

// AuthMiddleware gates protected routes: the token must resolve to an active
// account before any handler logic runs. It stores the token key and the
// account's identity on the context.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && (parts[0] == "Bearer" || parts[0] == "Token") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		user, err := auth.Authenticate(tokenString)
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("username", user.Username)
		c.Set("isStaff", user.IsStaff)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireStaff gates the admin management surface. It must run after
// AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("isStaff") {
			c.JSON(403, gin.H{"error": "Staff access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
