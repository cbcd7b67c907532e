package middleware

import (
	"strings"
	"time"

	"weddinghub_backend/internal/auth"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// ClaimsKey is where the parsed session claims live in the gin context.
	ClaimsKey = "claims"
	// SessionCookie carries the token for browser clients; API clients use
	// the Authorization header instead.
	SessionCookie = "session"
)

// AuthMiddleware authenticates the request from a Bearer header or the
// session cookie and stores the claims in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		// Sliding renewal: tokens past the renewal age are re-issued so
		// active sessions never expire mid-use.
		if auth.NeedsRenewal(claims) {
			if renewed, err := auth.RenewToken(claims); err == nil {
				c.Header("X-Renewed-Token", renewed)
				c.SetCookie(SessionCookie, renewed, int(30*24*time.Hour/time.Second), "/", "", false, true)
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRoles allows only sessions whose role is in the given set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

// RequireVendor allows only sessions with a vendor association.
func RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}
		if !auth.IsVendor(claims) {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the session claims set by AuthMiddleware, or nil.
func GetClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
