package handlers

import (
	"strconv"

	"weddinghub_backend/internal/middleware"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// vendorIDFromSession resolves the acting vendor from the session claims.
func vendorIDFromSession(c *gin.Context) (string, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.Vendor == nil {
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		return "", false
	}
	return claims.Vendor.ID, true
}

// userIDFromSession resolves the authenticated user.
func userIDFromSession(c *gin.Context) (string, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return claims.UserID, true
}

func queryInt(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
