package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weddinghub_backend/internal/email"
	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/internal/validator"
	"weddinghub_backend/pkg/apperrors"
)

type QuoteService struct {
	quoteRepo  repositories.QuoteRepository
	vendorRepo repositories.VendorRepository
	outboxRepo repositories.OutboxRepository
	validator  *validator.Validator
}

func NewQuoteService(
	quoteRepo repositories.QuoteRepository,
	vendorRepo repositories.VendorRepository,
	outboxRepo repositories.OutboxRepository,
	v *validator.Validator,
) *QuoteService {
	return &QuoteService{
		quoteRepo:  quoteRepo,
		vendorRepo: vendorRepo,
		outboxRepo: outboxRepo,
		validator:  v,
	}
}

// SubmitQuote records a customer inquiry against a publicly visible
// vendor. Duplicate submissions are accepted here; cleanup is a separate
// admin operation.
func (s *QuoteService) SubmitQuote(req *dto.SubmitQuoteRequest) (*dto.QuoteView, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	// Any existing vendor can receive inquiries; the directory hides
	// unapproved profiles, but a lapsed subscription must not turn
	// submissions into a misleading 404.
	vendor, err := s.vendorRepo.FindByID(req.VendorID)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	quote := &models.QuoteRequest{
		VendorID:      vendor.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
		Status:        models.QuoteStatusPending,
	}
	if req.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("eventDate must be formatted as YYYY-MM-DD")
		}
		quote.EventDate = &eventDate
	}

	if err := s.quoteRepo.Create(quote); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("quote request submitted", "quoteId", quote.ID, "vendorId", vendor.ID)
	view := quoteViewFrom(quote)
	return &view, nil
}

// ListQuotes returns the vendor's own inbox, newest first.
func (s *QuoteService) ListQuotes(vendorID string, req *dto.ListQuotesRequest) (*dto.QuoteListResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	quotes, total, err := s.quoteRepo.FindByVendor(vendorID, models.QuoteStatus(req.Status), req.Page, req.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.QuoteView, 0, len(quotes))
	for i := range quotes {
		views = append(views, quoteViewFrom(&quotes[i]))
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	return &dto.QuoteListResponse{
		Quotes:   views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// RespondQuote records the vendor's single response to a quote request.
// A quote not owned by the vendor reads as missing; a quote that already
// left PENDING is a conflict, never an overwrite.
func (s *QuoteService) RespondQuote(vendorID, quoteID string, req *dto.RespondQuoteRequest) (*dto.QuoteView, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	quote, err := s.quoteRepo.FindByIDForVendor(quoteID, vendorID)
	if err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return nil, apperrors.ErrQuoteNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if quote.Status != models.QuoteStatusPending {
		return nil, apperrors.ErrQuoteAlreadyResponded
	}

	now := time.Now()
	switch req.Action {
	case "decline":
		quote.Status = models.QuoteStatusDeclined
	default: // accept, respond
		quote.Status = models.QuoteStatusResponded
	}
	quote.VendorResponse = req.Response
	quote.ProposedPrice = req.ProposedPrice
	quote.AdditionalDetails = req.AdditionalDetails
	quote.RespondedAt = &now

	if err := s.quoteRepo.UpdateResponse(quote); err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return nil, apperrors.ErrQuoteNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Every decision notifies the customer, declines included.
	s.enqueueResponseEmail(quote)

	logger.Info("quote responded",
		"quoteId", quote.ID, "vendorId", vendorID, "action", req.Action)

	view := quoteViewFrom(quote)
	return &view, nil
}

func (s *QuoteService) enqueueResponseEmail(quote *models.QuoteRequest) {
	businessName := ""
	if vendor, err := s.vendorRepo.FindByID(quote.VendorID); err == nil {
		businessName = vendor.BusinessName
	}

	subject := "Quote Response from " + businessName
	headline := "You have a new quote response"
	if quote.Status == models.QuoteStatusDeclined {
		subject = "Quote Request Update from " + businessName
		headline = "Update on your quote request"
	}

	data := email.TemplateData{
		"CustomerName":      quote.CustomerName,
		"BusinessName":      businessName,
		"Headline":          headline,
		"Message":           quote.VendorResponse,
		"AdditionalDetails": quote.AdditionalDetails,
	}
	if quote.ProposedPrice != nil {
		data["ProposedPrice"] = fmt.Sprintf("%.2f", *quote.ProposedPrice)
	}
	if quote.EventDate != nil {
		data["EventDate"] = quote.EventDate.Format("January 2, 2006")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to encode quote email payload", "quoteId", quote.ID, "error", err)
		return
	}

	entry := &models.EmailOutbox{
		RecipientEmail: quote.CustomerEmail,
		Subject:        subject,
		TemplateName:   email.TemplateQuoteResponse,
		Payload:        payload,
	}
	if err := s.outboxRepo.Enqueue(entry); err != nil {
		logger.Error("failed to enqueue quote email", "quoteId", quote.ID, "error", err)
	}
}

// DetectDuplicates scans every vendor's quotes for repeat submissions
// without deleting anything.
func (s *QuoteService) DetectDuplicates() (*dto.DuplicateScanResponse, error) {
	vendorIDs, err := s.quoteRepo.VendorIDsWithQuotes()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.DuplicateScanResponse{Results: []dto.VendorDuplicateReport{}}
	for _, vendorID := range vendorIDs {
		quotes, err := s.quoteRepo.FindAllByVendorNewestFirst(vendorID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.VendorsProcessed++

		groups := classifyDuplicates(quotes)
		report := dto.VendorDuplicateReport{
			VendorID:     vendorID,
			BusinessName: s.businessName(vendorID),
			TotalQuotes:  len(quotes),
			Groups:       groups,
		}
		for _, g := range groups {
			report.DuplicateCount += len(g.DuplicateIDs)
		}
		report.UniqueQuotes = report.TotalQuotes - report.DuplicateCount

		if report.DuplicateCount > 0 {
			resp.VendorsWithDuplicates++
			resp.TotalDuplicates += report.DuplicateCount
		}
		resp.Results = append(resp.Results, report)
	}
	return resp, nil
}

// CleanupDuplicates removes repeat submissions, keeping the most recent
// quote of each duplicate group.
func (s *QuoteService) CleanupDuplicates() (*dto.CleanupDuplicatesResponse, error) {
	vendorIDs, err := s.quoteRepo.VendorIDsWithQuotes()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CleanupDuplicatesResponse{Results: []dto.CleanupResultEntry{}}
	for _, vendorID := range vendorIDs {
		quotes, err := s.quoteRepo.FindAllByVendorNewestFirst(vendorID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.VendorsProcessed++

		var removable []string
		for _, g := range classifyDuplicates(quotes) {
			removable = append(removable, g.DuplicateIDs...)
		}
		if len(removable) == 0 {
			continue
		}

		removed, err := s.quoteRepo.DeleteByIDs(vendorID, removable)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		resp.VendorsWithDuplicates++
		resp.TotalRemoved += removed
		resp.Results = append(resp.Results, dto.CleanupResultEntry{
			VendorID:     vendorID,
			BusinessName: s.businessName(vendorID),
			Removed:      removed,
			Remaining:    len(quotes) - len(removable),
		})

		logger.Info("duplicate quotes removed", "vendorId", vendorID, "removed", removed)
	}
	return resp, nil
}

func (s *QuoteService) businessName(vendorID string) string {
	vendor, err := s.vendorRepo.FindByID(vendorID)
	if err != nil {
		return ""
	}
	return vendor.BusinessName
}

// classifyDuplicates walks quotes ordered newest-first and groups repeat
// submissions of the same (name, email, message) tuple. The first quote
// seen per tuple, the newest, is retained; later ones are duplicates.
func classifyDuplicates(quotes []models.QuoteRequest) []dto.DuplicateGroup {
	retained := make(map[string]int)
	var groups []dto.DuplicateGroup
	groupIndex := make(map[string]int)

	for i := range quotes {
		q := &quotes[i]
		key := q.DuplicateKey()
		ri, seen := retained[key]
		if !seen {
			retained[key] = i
			continue
		}

		gi, ok := groupIndex[key]
		if !ok {
			groups = append(groups, dto.DuplicateGroup{
				CustomerName:  q.CustomerName,
				CustomerEmail: q.CustomerEmail,
				RetainedID:    quotes[ri].ID,
				Count:         1,
			})
			gi = len(groups) - 1
			groupIndex[key] = gi
		}
		groups[gi].DuplicateIDs = append(groups[gi].DuplicateIDs, q.ID)
		groups[gi].Count = len(groups[gi].DuplicateIDs) + 1
	}
	return groups
}

func quoteViewFrom(quote *models.QuoteRequest) dto.QuoteView {
	return dto.QuoteView{
		ID:                quote.ID,
		VendorID:          quote.VendorID,
		CustomerName:      quote.CustomerName,
		CustomerEmail:     quote.CustomerEmail,
		CustomerPhone:     quote.CustomerPhone,
		EventDate:         quote.EventDate,
		Message:           quote.Message,
		Status:            string(quote.Status),
		VendorResponse:    quote.VendorResponse,
		ProposedPrice:     quote.ProposedPrice,
		AdditionalDetails: quote.AdditionalDetails,
		RespondedAt:       quote.RespondedAt,
		CreatedAt:         quote.CreatedAt,
	}
}
