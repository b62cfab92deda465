package middleware

import (
	"strings"

	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader   = "X-User-ID"
	UserNameHeader = "X-User-Name"
)

// CurrentUser resolves the acting user from request headers. The dashboard
// has no authentication; missing headers fall back to fallback.
func CurrentUser(fallback domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := fallback
		if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
			user.ID = id
			user.Name = id
		}
		if name := strings.TrimSpace(c.GetHeader(UserNameHeader)); name != "" {
			user.Name = name
		}
		SetUser(c, user)
		c.Next()
	}
}

func SetUser(c *gin.Context, user domain.User) {
	c.Set(string(userKey), user)
}

func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(string(userKey))
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
