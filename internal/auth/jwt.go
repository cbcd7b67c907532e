package auth

import (
	"errors"
	"time"

	"weddinghub_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret  []byte
	tokenTTL   = 30 * 24 * time.Hour
	renewAfter = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// VendorClaim is the denormalized vendor snapshot embedded in the session.
// It can go stale after out-of-band vendor updates (admin approval); the
// refresh endpoint re-reads the record and re-issues the token.
type VendorClaim struct {
	ID                 string                    `json:"id"`
	BusinessName       string                    `json:"businessName"`
	Verified           bool                      `json:"verified"`
	VerificationStatus models.VerificationStatus `json:"verificationStatus"`
}

type Claims struct {
	UserID string          `json:"userId"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	Vendor *VendorClaim    `json:"vendor,omitempty"`
	jwt.RegisteredClaims
}

// InitJWT sets the signing secret and session lifetime policy.
func InitJWT(secret string, ttl, renew time.Duration) {
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
	if renew > 0 {
		renewAfter = renew
	}
}

// GenerateToken issues a session token for the user, snapshotting the
// vendor association if one exists.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	if user.Vendor != nil {
		claims.Vendor = &VendorClaim{
			ID:                 user.Vendor.ID,
			BusinessName:       user.Vendor.BusinessName,
			Verified:           user.Vendor.Verified,
			VerificationStatus: user.Vendor.VerificationStatus,
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// RenewToken re-issues a token from existing claims with a fresh lifetime.
// The vendor snapshot is carried as-is; read-repair happens on refresh.
func RenewToken(claims *Claims) (string, error) {
	now := time.Now()
	renewed := *claims
	renewed.IssuedAt = jwt.NewNumericDate(now)
	renewed.ExpiresAt = jwt.NewNumericDate(now.Add(tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &renewed)
	return token.SignedString(jwtSecret)
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// NeedsRenewal reports whether the token has been in use long enough for
// the sliding-renewal policy to re-issue it.
func NeedsRenewal(claims *Claims) bool {
	if claims.IssuedAt == nil {
		return true
	}
	return time.Since(claims.IssuedAt.Time) > renewAfter
}

// IsAdmin reports whether the session belongs to an administrator.
// Authorization is a role claim, not an email comparison.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// IsVendor reports whether the session has a vendor association.
func IsVendor(claims *Claims) bool {
	return claims.Role == models.UserRoleVendor && claims.Vendor != nil
}
