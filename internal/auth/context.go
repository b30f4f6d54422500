package auth

import "github.com/gin-gonic/gin"

const (
	userIDKey    = "userID"
	userEmailKey = "userEmail"
)

// GetUserID returns the authenticated user's ID, or 0 when the request is anonymous.
func GetUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}

// SetUser stores the authenticated identity on the request context.
func SetUser(c *gin.Context, id int, email string) {
	c.Set(userIDKey, id)
	c.Set(userEmailKey, email)
}
