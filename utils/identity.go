package utils

import "github.com/gin-gonic/gin"

// UserIDHeader carries the identity of the caller on every user-scoped route.
const UserIDHeader = "X-Sharer-User-Id"

const userIDKey = "userID"

// SetUserID stores the authenticated caller id on the request context.
func SetUserID(c *gin.Context, userID int64) {
	c.Set(userIDKey, userID)
}

// UserID returns the caller id stored by the user-id middleware.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
