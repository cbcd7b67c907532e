package services

import (
	"testing"
	"time"

	"weddinghub_backend/internal/email"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteAt(t *testing.T, sc *ServiceContainer, vendorID, name, email, message string, at time.Time) *models.QuoteRequest {
	t.Helper()

	quote := &models.QuoteRequest{
		VendorID:      vendorID,
		CustomerName:  name,
		CustomerEmail: email,
		Message:       message,
		Status:        models.QuoteStatusPending,
	}
	quote.CreatedAt = at
	require.NoError(t, sc.QuoteRepo.Create(quote))
	return quote
}

func TestSubmitQuoteCreatesPending(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	view, err := sc.Quote.SubmitQuote(&dto.SubmitQuoteRequest{
		VendorID:      vendor.ID,
		CustomerName:  "Fatima Ali",
		CustomerEmail: "fatima@example.com",
		EventDate:     "2026-11-21",
		Message:       "We are planning a nikah for 150 guests.",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.QuoteStatusPending), view.Status)
	require.NotNil(t, view.EventDate)
	assert.Equal(t, "2026-11-21", view.EventDate.Format("2006-01-02"))
}

func TestSubmitQuoteUnknownVendorIs404(t *testing.T) {
	sc, _ := newTestContainer(t)

	_, err := sc.Quote.SubmitQuote(&dto.SubmitQuoteRequest{
		VendorID:      "no-such-vendor",
		CustomerName:  "Fatima Ali",
		CustomerEmail: "fatima@example.com",
		Message:       "We are planning a nikah for 150 guests.",
	})
	assert.ErrorIs(t, err, apperrors.ErrVendorNotFound)
}

func TestSubmitQuoteReachesUnlistedVendor(t *testing.T) {
	sc, db := newTestContainer(t)
	pending := createPendingVendor(t, db, "p@example.com", "Pending Palace")

	// The directory hides unapproved vendors, but an inquiry against an
	// existing profile is still recorded.
	view, err := sc.Quote.SubmitQuote(&dto.SubmitQuoteRequest{
		VendorID:      pending.ID,
		CustomerName:  "Fatima Ali",
		CustomerEmail: "fatima@example.com",
		Message:       "We are planning a nikah for 150 guests.",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.QuoteStatusPending), view.Status)

	var count int64
	require.NoError(t, db.Model(&models.QuoteRequest{}).
		Where("vendor_id = ?", pending.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListQuotesNewestFirst(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	base := time.Now().Add(-time.Hour)
	older := newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "first message here", base)
	newer := newQuoteAt(t, sc, vendor.ID, "B", "b@example.com", "second message here", base.Add(time.Minute))

	resp, err := sc.Quote.ListQuotes(vendor.ID, &dto.ListQuotesRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Quotes, 2)
	assert.Equal(t, newer.ID, resp.Quotes[0].ID)
	assert.Equal(t, older.ID, resp.Quotes[1].ID)
}

func TestRespondQuoteAccept(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")
	quote := createQuote(t, db, vendor.ID, "Fatima Ali", "fatima@example.com", "We are planning a nikah.")

	price := 500.0
	view, err := sc.Quote.RespondQuote(vendor.ID, quote.ID, &dto.RespondQuoteRequest{
		Action:        "accept",
		Response:      "Thank you for your interest, we would love to cater your wedding!",
		ProposedPrice: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.QuoteStatusResponded), view.Status)
	require.NotNil(t, view.ProposedPrice)
	assert.Equal(t, 500.0, *view.ProposedPrice)
	assert.NotNil(t, view.RespondedAt)

	// The customer notification lands in the outbox.
	var entry models.EmailOutbox
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "fatima@example.com", entry.RecipientEmail)
	assert.Equal(t, email.TemplateQuoteResponse, entry.TemplateName)
	assert.Equal(t, "Quote Response from Crescent Hall", entry.Subject)
}

func TestRespondQuoteDecline(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")
	quote := createQuote(t, db, vendor.ID, "Fatima Ali", "fatima@example.com", "We are planning a nikah.")

	view, err := sc.Quote.RespondQuote(vendor.ID, quote.ID, &dto.RespondQuoteRequest{
		Action:   "decline",
		Response: "Unfortunately we are fully booked that weekend.",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.QuoteStatusDeclined), view.Status)

	// The customer hears about declines too, with the update wording.
	assert.Equal(t, int64(1), countOutbox(t, db))
	var entry models.EmailOutbox
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "fatima@example.com", entry.RecipientEmail)
	assert.Equal(t, email.TemplateQuoteResponse, entry.TemplateName)
	assert.Equal(t, "Quote Request Update from Crescent Hall", entry.Subject)
}

func TestRespondQuoteTwiceConflicts(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")
	quote := createQuote(t, db, vendor.ID, "Fatima Ali", "fatima@example.com", "We are planning a nikah.")

	_, err := sc.Quote.RespondQuote(vendor.ID, quote.ID, &dto.RespondQuoteRequest{
		Action:   "respond",
		Response: "First response",
	})
	require.NoError(t, err)

	_, err = sc.Quote.RespondQuote(vendor.ID, quote.ID, &dto.RespondQuoteRequest{
		Action:   "respond",
		Response: "Second response",
	})
	assert.ErrorIs(t, err, apperrors.ErrQuoteAlreadyResponded)

	// The original response is untouched.
	stored, err := sc.QuoteRepo.FindByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "First response", stored.VendorResponse)
}

func TestRespondQuoteForeignQuoteReadsAsMissing(t *testing.T) {
	sc, db := newTestContainer(t)
	owner := createApprovedVendor(t, db, "owner@example.com", "Crescent Hall")
	intruder := createApprovedVendor(t, db, "intruder@example.com", "Other Hall")
	quote := createQuote(t, db, owner.ID, "Fatima Ali", "fatima@example.com", "We are planning a nikah.")

	_, err := sc.Quote.RespondQuote(intruder.ID, quote.ID, &dto.RespondQuoteRequest{
		Action:   "respond",
		Response: "Trying to answer someone else's inquiry",
	})
	assert.ErrorIs(t, err, apperrors.ErrQuoteNotFound)
}

func TestDetectDuplicatesKeepsNewest(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	base := time.Now().Add(-time.Hour)
	dup := newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "same message", base)
	other := newQuoteAt(t, sc, vendor.ID, "B", "b@example.com", "different message", base.Add(time.Minute))
	kept := newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "same message", base.Add(2*time.Minute))

	resp, err := sc.Quote.DetectDuplicates()
	require.NoError(t, err)

	assert.Equal(t, 1, resp.VendorsProcessed)
	assert.Equal(t, 1, resp.VendorsWithDuplicates)
	assert.Equal(t, 1, resp.TotalDuplicates)

	require.Len(t, resp.Results, 1)
	report := resp.Results[0]
	assert.Equal(t, 3, report.TotalQuotes)
	assert.Equal(t, 2, report.UniqueQuotes)
	assert.Equal(t, 1, report.DuplicateCount)

	require.Len(t, report.Groups, 1)
	assert.Equal(t, kept.ID, report.Groups[0].RetainedID)
	assert.Equal(t, []string{dup.ID}, report.Groups[0].DuplicateIDs)
	assert.NotContains(t, report.Groups[0].DuplicateIDs, other.ID)

	// Detection never deletes.
	var count int64
	require.NoError(t, db.Model(&models.QuoteRequest{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCleanupDuplicatesRemovesOlderCopies(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	base := time.Now().Add(-time.Hour)
	dup := newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "same message", base)
	other := newQuoteAt(t, sc, vendor.ID, "B", "b@example.com", "different message", base.Add(time.Minute))
	kept := newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "same message", base.Add(2*time.Minute))

	resp, err := sc.Quote.CleanupDuplicates()
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TotalRemoved)
	assert.Equal(t, 1, resp.VendorsProcessed)
	assert.Equal(t, 1, resp.VendorsWithDuplicates)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(1), resp.Results[0].Removed)
	assert.Equal(t, 2, resp.Results[0].Remaining)

	var remaining []models.QuoteRequest
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	ids := []string{remaining[0].ID, remaining[1].ID}
	assert.Contains(t, ids, kept.ID)
	assert.Contains(t, ids, other.ID)
	assert.NotContains(t, ids, dup.ID)
}

func TestCleanupDuplicatesIdempotent(t *testing.T) {
	sc, db := newTestContainer(t)
	vendor := createApprovedVendor(t, db, "v@example.com", "Crescent Hall")

	base := time.Now().Add(-time.Hour)
	newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "same message", base)
	newQuoteAt(t, sc, vendor.ID, "A", "a@example.com", "same message", base.Add(time.Minute))

	first, err := sc.Quote.CleanupDuplicates()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalRemoved)

	second, err := sc.Quote.CleanupDuplicates()
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.TotalRemoved)
	assert.Equal(t, 0, second.VendorsWithDuplicates)

	var count int64
	require.NoError(t, db.Model(&models.QuoteRequest{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
