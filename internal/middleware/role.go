package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// RequireCanteenAccess checks the :canteen_id path param against the principal.
// Managers are limited to the canteen in their token.
func RequireCanteenAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		canteenID, err := strconv.Atoi(c.Param("canteen_id"))
		if err != nil || canteenID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid canteen id"})
			return
		}

		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !p.CanAccess(canteenID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no access to this canteen"})
			return
		}

		c.Set("canteenID", canteenID)
		c.Next()
	}
}
