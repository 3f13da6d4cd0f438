package middleware

import (
	"net/http"
	"strings"

	"chefpay/internal/auth"
	"chefpay/internal/core"
	"chefpay/internal/logging"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

func AuthMiddleware(secret []byte) gin.HandlerFunc {
	logger := logging.Component("auth")

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		p, err := auth.ValidateToken(secret, parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		logger.Debug().
			Str("user_id", p.UserID).
			Str("role", p.Role).
			Int("canteen_id", p.CanteenID).
			Msg("token accepted")

		c.Set(principalKey, p)
		c.Set("userID", p.UserID)
		c.Set("userEmail", p.Email)
		c.Set("userRole", p.Role)
		c.Set("authToken", parts[1])
		c.Next()
	}
}

// PrincipalFrom returns the principal attached by AuthMiddleware.
func PrincipalFrom(c *gin.Context) (core.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return core.Principal{}, false
	}
	p, ok := v.(core.Principal)
	return p, ok
}
