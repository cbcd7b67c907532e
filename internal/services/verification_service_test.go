package services

import (
	"testing"

	"weddinghub_backend/internal/email"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyVendorApprove(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createPendingVendor(t, db, "p@example.com", "Pending Palace")
	admin := createAdmin(t, db, "admin@example.com")

	resp, err := sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
		VendorID: vendor.ID,
		Status:   string(models.VerificationApproved),
		Notes:    "Documents look good",
	})
	require.NoError(t, err)
	assert.True(t, resp.Verified)

	var updated models.Vendor
	require.NoError(t, db.First(&updated, "id = ?", vendor.ID).Error)
	assert.True(t, updated.Verified)
	assert.Equal(t, models.VerificationApproved, updated.VerificationStatus)
	assert.Equal(t, "Documents look good", updated.VerificationNotes)
	assert.Equal(t, admin.Email, updated.VerifiedBy)
	assert.NotNil(t, updated.VerifiedAt)
}

func TestVerifyVendorRejectKeepsFlagFalse(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createPendingVendor(t, db, "p@example.com", "Pending Palace")
	admin := createAdmin(t, db, "admin@example.com")

	_, err := sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
		VendorID: vendor.ID,
		Status:   string(models.VerificationRejected),
		Notes:    "Incomplete documents",
	})
	require.NoError(t, err)

	var updated models.Vendor
	require.NoError(t, db.First(&updated, "id = ?", vendor.ID).Error)
	assert.False(t, updated.Verified)
	assert.Equal(t, models.VerificationRejected, updated.VerificationStatus)
}

func TestVerifyVendorUnderReviewThenApprove(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createPendingVendor(t, db, "p@example.com", "Pending Palace")
	admin := createAdmin(t, db, "admin@example.com")

	_, err := sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
		VendorID: vendor.ID,
		Status:   string(models.VerificationUnderReview),
		Notes:    "Checking references",
	})
	require.NoError(t, err)

	// UNDER_REVIEW is not terminal, so no decision email yet.
	assert.Equal(t, int64(0), countOutbox(t, db))

	_, err = sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
		VendorID: vendor.ID,
		Status:   string(models.VerificationApproved),
	})
	require.NoError(t, err)

	var updated models.Vendor
	require.NoError(t, db.First(&updated, "id = ?", vendor.ID).Error)
	assert.True(t, updated.Verified)
}

func TestVerifyVendorTerminalStatesAreFinal(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "a@example.com", "Approved Hall")
	admin := createAdmin(t, db, "admin@example.com")

	for _, target := range []models.VerificationStatus{
		models.VerificationPending,
		models.VerificationUnderReview,
		models.VerificationRejected,
	} {
		_, err := sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
			VendorID: vendor.ID,
			Status:   string(target),
		})
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok, "transition to %s must fail", target)
		assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	}
}

func TestVerifyVendorUnknownVendor(t *testing.T) {
	sc, db := newTestContainer(t)
	admin := createAdmin(t, db, "admin@example.com")

	_, err := sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
		VendorID: "no-such-vendor",
		Status:   string(models.VerificationApproved),
	})
	assert.ErrorIs(t, err, apperrors.ErrVendorNotFound)
}

func TestVerifyVendorEnqueuesDecisionEmail(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createPendingVendor(t, db, "owner@pending.example", "Pending Palace")
	admin := createAdmin(t, db, "admin@example.com")

	_, err := sc.Verification.VerifyVendor(admin.Email, &dto.VerifyVendorRequest{
		VendorID: vendor.ID,
		Status:   string(models.VerificationApproved),
	})
	require.NoError(t, err)

	var entry models.EmailOutbox
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "owner@pending.example", entry.RecipientEmail)
	assert.Equal(t, email.TemplateVendorApproved, entry.TemplateName)
	assert.Equal(t, models.OutboxStatusPending, entry.Status)
}

func TestAdminListVendorsStatusFilter(t *testing.T) {
	sc, db := newTestContainer(t)
	createApprovedVendor(t, db, "a@example.com", "Approved Hall")
	pending := createPendingVendor(t, db, "p@example.com", "Pending Palace")

	resp, err := sc.Verification.ListVendors(&dto.AdminListVendorsRequest{
		Status: string(models.VerificationPending),
	})
	require.NoError(t, err)

	require.Len(t, resp.Vendors, 1)
	assert.Equal(t, pending.ID, resp.Vendors[0].ID)
	assert.Equal(t, "Owner of Pending Palace", resp.Vendors[0].OwnerName)

	all, err := sc.Verification.ListVendors(&dto.AdminListVendorsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}
