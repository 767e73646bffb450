package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/websocket"
)

// UsernameKey is the gin context key holding the authenticated username
const UsernameKey = "username"

// JWTAuth rejects requests without a valid bearer token and stores the
// token subject under UsernameKey
func JWTAuth(verifier websocket.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		username, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// Username returns the authenticated username set by JWTAuth
func Username(c *gin.Context) string {
	return c.GetString(UsernameKey)
}
