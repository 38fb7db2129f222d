package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/peakstore/peakstore-be/internal/user"
	"github.com/peakstore/peakstore-be/internal/utils"
)

// extractAccessToken prefers the access_token cookie, falling back to the
// Authorization header.
func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AuthMiddleware enriches the request context with the caller's identity
// when a valid token is present. Requests without a token pass through
// anonymously; route handlers decide what anonymous callers may do.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractAccessToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		ctx := utils.SetUserContext(
			c.Request.Context(),
			claims.UserID, claims.Username, claims.Role,
		)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
