package auth

import (
	"testing"
	"time"

	"weddinghub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret", 0, 0)

	user := &models.User{
		Name:  "Amina",
		Email: "amina@example.com",
		Role:  models.UserRoleVendor,
		Vendor: &models.Vendor{
			BusinessName:       "Barakah Banquets",
			Verified:           true,
			VerificationStatus: models.VerificationApproved,
		},
	}
	user.ID = "user-1"
	user.Vendor.ID = "vendor-1"

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleVendor, claims.Role)
	require.NotNil(t, claims.Vendor)
	assert.Equal(t, "vendor-1", claims.Vendor.ID)
	assert.True(t, claims.Vendor.Verified)
	assert.Equal(t, models.VerificationApproved, claims.Vendor.VerificationStatus)
}

func TestParseTokenWrongSecret(t *testing.T) {
	InitJWT("secret-one", 0, 0)
	user := &models.User{Email: "a@example.com", Role: models.UserRoleCustomer}
	user.ID = "user-1"
	token, err := GenerateToken(user)
	require.NoError(t, err)

	InitJWT("secret-two", 0, 0)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestNeedsRenewal(t *testing.T) {
	InitJWT("test-secret", 30*24*time.Hour, 24*time.Hour)

	user := &models.User{Email: "a@example.com", Role: models.UserRoleCustomer}
	user.ID = "user-1"
	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.False(t, NeedsRenewal(claims))

	claims.IssuedAt.Time = time.Now().Add(-25 * time.Hour)
	assert.True(t, NeedsRenewal(claims))
}

func TestRenewTokenKeepsSnapshot(t *testing.T) {
	InitJWT("test-secret", 0, 0)

	user := &models.User{Email: "a@example.com", Role: models.UserRoleVendor,
		Vendor: &models.Vendor{BusinessName: "Barakah", VerificationStatus: models.VerificationPending}}
	user.ID = "user-1"
	user.Vendor.ID = "vendor-1"

	token, err := GenerateToken(user)
	require.NoError(t, err)
	claims, err := ParseToken(token)
	require.NoError(t, err)

	renewed, err := RenewToken(claims)
	require.NoError(t, err)
	renewedClaims, err := ParseToken(renewed)
	require.NoError(t, err)

	assert.Equal(t, claims.UserID, renewedClaims.UserID)
	require.NotNil(t, renewedClaims.Vendor)
	assert.Equal(t, "vendor-1", renewedClaims.Vendor.ID)
	assert.False(t, renewedClaims.ExpiresAt.Before(claims.ExpiresAt.Time))
}

func TestRoleHelpers(t *testing.T) {
	adminClaims := &Claims{Role: models.UserRoleAdmin}
	assert.True(t, IsAdmin(adminClaims))
	assert.False(t, IsVendor(adminClaims))

	vendorClaims := &Claims{Role: models.UserRoleVendor, Vendor: &VendorClaim{ID: "v"}}
	assert.True(t, IsVendor(vendorClaims))
	assert.False(t, IsAdmin(vendorClaims))

	// A vendor role without a snapshot is not a usable vendor session.
	assert.False(t, IsVendor(&Claims{Role: models.UserRoleVendor}))
}
