package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/backend/internal/domain/identity"
)

// RequireRole creates middleware that requires the authenticated user to
// hold one of the given roles
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		if !allowed[identity.Role(claims.Role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Insufficient role for this operation",
				},
			})
			return
		}

		c.Next()
	}
}

// RequireManager requires a role that may mutate property and rate data
func RequireManager() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin, identity.RoleManager)
}

// RequireAdmin requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin)
}
