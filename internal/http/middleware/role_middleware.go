package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biholo/planete-xplorer/domain"
)

// RequireRole rejects authenticated requests whose held roles do not satisfy
// the required one, directly or through the role hierarchy. It must run
// after RequireAuth.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": domain.ErrUnauthorized.Error(),
				"data":    nil,
				"status":  http.StatusUnauthorized,
			})
			return
		}
		if !domain.AnySatisfies(claims.Roles, required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": domain.ErrInsufficientRole.Error(),
				"data":    nil,
				"status":  http.StatusForbidden,
			})
			return
		}
		c.Next()
	}
}
