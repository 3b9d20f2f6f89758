package middleware

import (
	"net/http"
	"strings"

	"github.com/Nadeem-mohammad0021/assistant/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's
// profile ID in the request context under "profileID". Token issuance
// is handled by the hosted identity provider; this service only
// verifies signatures.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		profileID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || profileID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("profileID", profileID)
		c.Next()
	}
}

// ProfileID returns the authenticated profile ID from the context.
func ProfileID(c *gin.Context) (string, bool) {
	v, ok := c.Get("profileID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
