package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the backend's login flow on the shared
// parent domain; the console only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// RequestToken prefers the cookie and falls back to an Authorization header.
func RequestToken(c *gin.Context) string {
	if token := GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
