package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/models"
)

const (
	contextKeyEmail = "userEmail"
	contextKeyRoles = "userRoles"
)

// AuthMiddleware verifies the access token from the auth cookie, falling back
// to a Bearer header for non-browser clients. Claims land in the gin context.
func AuthMiddleware(issuer *auth.TokenIssuer, accessCookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c, accessCookieName)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(contextKeyEmail, claims.Subject)
		c.Set(contextKeyRoles, claims.Roles)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RequireRoles allows the request through only when the token carries at
// least one of the given roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		rolesVal, exists := c.Get(contextKeyRoles)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		userRoles, ok := rolesVal.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		for _, role := range userRoles {
			if allowed[role] {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// GetUserEmail returns the authenticated subject, or "" outside an
// authenticated route.
func GetUserEmail(c *gin.Context) string {
	if email, exists := c.Get(contextKeyEmail); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRoles returns the role claims of the authenticated user.
func GetUserRoles(c *gin.Context) []string {
	if roles, exists := c.Get(contextKeyRoles); exists {
		if s, ok := roles.([]string); ok {
			return s
		}
	}
	return nil
}
