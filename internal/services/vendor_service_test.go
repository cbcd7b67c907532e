package services

import (
	"context"
	"testing"

	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationForm(email string) *dto.RegisterVendorRequest {
	return &dto.RegisterVendorRequest{
		Name:               "Amina Rahman",
		Email:              email,
		Password:           "a-strong-password",
		BusinessName:       "Barakah Banquets",
		Category:           string(models.CategoryVenues),
		Phone:              "+1-555-0199",
		Address:            "10 Crescent Ave",
		City:               "Houston",
		State:              "TX",
		ZipCode:            "77001",
		PriceRange:         string(models.PriceRangeLuxury),
		IslamicCompliances: []string{models.ComplianceHalal, models.CompliancePrayerSpace},
	}
}

func TestRegisterVendorCreatesPendingApplication(t *testing.T) {
	sc, db := newTestContainer(t)

	resp, err := sc.Vendor.RegisterVendor(context.Background(), registrationForm("amina@barakah.example"), nil)
	require.NoError(t, err)

	assert.Equal(t, string(models.VerificationPending), resp.Status)
	assert.NotEmpty(t, resp.VendorID)

	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, "id = ?", resp.VendorID).Error)
	assert.False(t, vendor.Verified)
	assert.Equal(t, models.VerificationPending, vendor.VerificationStatus)
	assert.Equal(t, "Application received. Awaiting review.", vendor.VerificationNotes)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", vendor.UserID).Error)
	assert.Equal(t, models.UserRoleVendor, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "a-strong-password", user.PasswordHash)
}

func TestRegisterVendorMissingFields(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.Vendor.RegisterVendor(context.Background(), &dto.RegisterVendorRequest{
		Email: "incomplete@example.com",
	}, nil)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "businessName")
	assert.Contains(t, details, "category")
}

func TestRegisterVendorDuplicateEmailLeavesNoPartialRows(t *testing.T) {
	sc, db := newTestContainer(t)

	_, err := sc.Vendor.RegisterVendor(context.Background(), registrationForm("amina@barakah.example"), nil)
	require.NoError(t, err)

	second := registrationForm("amina@barakah.example")
	second.BusinessName = "Second Attempt"
	_, err = sc.Vendor.RegisterVendor(context.Background(), second, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	var userCount, vendorCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Vendor{}).Count(&vendorCount).Error)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), vendorCount)
}

func TestSearchVendorsOnlyApprovedVisible(t *testing.T) {
	sc, db := newTestContainer(t)
	approved := createApprovedVendor(t, db, "a@example.com", "Visible Caterer")
	createPendingVendor(t, db, "b@example.com", "Invisible Venue")

	resp, err := sc.Vendor.SearchVendors(&dto.SearchVendorsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Vendors, 1)
	assert.Equal(t, approved.ID, resp.Vendors[0].ID)
	assert.Equal(t, int64(1), resp.Total)
}

func TestSearchVendorsComplianceFilter(t *testing.T) {
	sc, db := newTestContainer(t)
	halal := createApprovedVendor(t, db, "halal@example.com", "Halal Kitchen")
	require.NoError(t, db.Model(&models.Vendor{}).Where("id = ?", halal.ID).
		Update("islamic_compliances", `["halal","noAlcohol"]`).Error)
	createApprovedVendor(t, db, "plain@example.com", "Plain Kitchen")

	resp, err := sc.Vendor.SearchVendors(&dto.SearchVendorsRequest{
		Compliances: []string{models.ComplianceHalal},
	})
	require.NoError(t, err)

	require.Len(t, resp.Vendors, 1)
	assert.Equal(t, halal.ID, resp.Vendors[0].ID)
}

func TestGetVendorHidesUnapproved(t *testing.T) {
	sc, db := newTestContainer(t)
	pending := createPendingVendor(t, db, "p@example.com", "Pending Venue")

	_, err := sc.Vendor.GetVendor(pending.ID)
	assert.ErrorIs(t, err, apperrors.ErrVendorNotFound)

	_, err = sc.Vendor.GetVendor("no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrVendorNotFound)
}

func TestGetVendorReturnsProfile(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	detail, err := sc.Vendor.GetVendor(vendor.ID)
	require.NoError(t, err)

	assert.Equal(t, "Crescent Hall", detail.BusinessName)
	assert.Equal(t, "Dearborn", detail.City)
	assert.True(t, detail.Verified)
}

func TestSetMainPhotoIsExclusive(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	first := &models.VendorPhoto{VendorID: vendor.ID, URL: "/one.jpg", IsMain: true}
	second := &models.VendorPhoto{VendorID: vendor.ID, URL: "/two.jpg"}
	require.NoError(t, sc.VendorRepo.AddPhoto(first))
	require.NoError(t, sc.VendorRepo.AddPhoto(second))

	require.NoError(t, sc.Vendor.SetMainPhoto(vendor.ID, second.ID))

	var mains int64
	require.NoError(t, db.Model(&models.VendorPhoto{}).
		Where("vendor_id = ? AND is_main = ?", vendor.ID, true).
		Count(&mains).Error)
	assert.Equal(t, int64(1), mains)

	var photo models.VendorPhoto
	require.NoError(t, db.First(&photo, "id = ?", second.ID).Error)
	assert.True(t, photo.IsMain)
}
