package auth

import "github.com/gin-gonic/gin"

const userIDKey = "userID"

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SetUser stores the authenticated user ID on the request context.
func SetUser(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}
