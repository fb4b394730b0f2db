package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHeader names the demo persona making the request.
const UserHeader = "X-User-ID"

// ContextUserKey is where the resolved acting user id is stored on the gin context.
const ContextUserKey = "actingUserID"

// UserResolver is the minimal view of the user directory the middleware needs.
type UserResolver interface {
	HasUser(id string) bool
	CurrentUserID() string
}

// ActingUser resolves the acting user from the X-User-ID header, falling back
// to the selected demo persona. An unknown header value is rejected.
func ActingUser(users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(UserHeader)
		if id != "" && !users.HasUser(id) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user", "code": "USER_NOT_FOUND"})
			return
		}
		if id == "" {
			id = users.CurrentUserID()
		}
		if id != "" {
			c.Set(ContextUserKey, id)
		}
		c.Next()
	}
}

// UserID returns the acting user id resolved by ActingUser, or "".
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}

// limiterKey prefers the acting user, then the raw header, then the client IP.
func limiterKey(c *gin.Context) string {
	if id := UserID(c); id != "" {
		return "user:" + id
	}
	if id := c.GetHeader(UserHeader); id != "" {
		return "user:" + id
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
