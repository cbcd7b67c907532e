package services

import (
	"encoding/json"
	"errors"
	"time"

	"weddinghub_backend/internal/email"
	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/internal/validator"
	"weddinghub_backend/pkg/apperrors"
)

// VerificationService owns the admin review workflow for vendor
// applications.
type VerificationService struct {
	vendorRepo repositories.VendorRepository
	outboxRepo repositories.OutboxRepository
	validator  *validator.Validator
}

func NewVerificationService(
	vendorRepo repositories.VendorRepository,
	outboxRepo repositories.OutboxRepository,
	v *validator.Validator,
) *VerificationService {
	return &VerificationService{
		vendorRepo: vendorRepo,
		outboxRepo: outboxRepo,
		validator:  v,
	}
}

// ListVendors is the admin view over every application, optionally
// filtered by verification status.
func (s *VerificationService) ListVendors(req *dto.AdminListVendorsRequest) (*dto.AdminVendorListResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	vendors, total, err := s.vendorRepo.FindAll(repositories.AdminVendorFilter{
		Status:   models.VerificationStatus(req.Status),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.AdminVendorView, 0, len(vendors))
	for i := range vendors {
		v := &vendors[i]
		view := dto.AdminVendorView{
			ID:                 v.ID,
			BusinessName:       v.BusinessName,
			Category:           string(v.Category),
			City:               v.City,
			State:              v.State,
			Verified:           v.Verified,
			VerificationStatus: string(v.VerificationStatus),
			VerificationNotes:  v.VerificationNotes,
			VerifiedAt:         v.VerifiedAt,
			VerifiedBy:         v.VerifiedBy,
			CreatedAt:          v.CreatedAt,
		}
		if v.User != nil {
			view.OwnerName = v.User.Name
			view.OwnerEmail = v.User.Email
		}
		views = append(views, view)
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	return &dto.AdminVendorListResponse{
		Vendors:  views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// VerifyVendor moves a vendor through the verification state machine and
// enqueues the decision email on terminal states. The verified flag and
// the status column are written in one UPDATE so they stay in sync.
func (s *VerificationService) VerifyVendor(adminEmail string, req *dto.VerifyVendorRequest) (*dto.VerifyVendorResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	vendor, err := s.vendorRepo.FindByID(req.VendorID)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	target := models.VerificationStatus(req.Status)
	if !models.CanTransitionVerification(vendor.VerificationStatus, target) {
		return nil, apperrors.ErrVerificationTransition(
			string(vendor.VerificationStatus), string(target))
	}

	now := time.Now()
	fields := map[string]interface{}{
		"verification_status": target,
		"verification_notes":  req.Notes,
		"verified":            target == models.VerificationApproved,
	}
	if target == models.VerificationApproved || target == models.VerificationRejected {
		fields["verified_at"] = &now
		fields["verified_by"] = adminEmail
	}

	if err := s.vendorRepo.UpdateVerification(vendor.ID, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if target == models.VerificationApproved || target == models.VerificationRejected {
		s.enqueueDecisionEmail(vendor, target, req.Notes)
	}

	logger.Info("vendor verification updated",
		"vendorId", vendor.ID, "from", vendor.VerificationStatus,
		"to", target, "admin", adminEmail)

	return &dto.VerifyVendorResponse{
		VendorID:           vendor.ID,
		Verified:           target == models.VerificationApproved,
		VerificationStatus: string(target),
		VerificationNotes:  req.Notes,
	}, nil
}

// enqueueDecisionEmail records the notification in the outbox. Enqueue
// failure is logged and swallowed; the decision itself already stuck.
func (s *VerificationService) enqueueDecisionEmail(vendor *models.Vendor, target models.VerificationStatus, notes string) {
	recipient := vendor.Email
	ownerName := vendor.BusinessName
	if vendor.User != nil {
		recipient = vendor.User.Email
		ownerName = vendor.User.Name
	}

	templateName := email.TemplateVendorApproved
	subject := "Your vendor application has been approved"
	if target == models.VerificationRejected {
		templateName = email.TemplateVendorRejected
		subject = "Update on your vendor application"
	}

	payload, err := json.Marshal(email.TemplateData{
		"VendorName":   ownerName,
		"BusinessName": vendor.BusinessName,
		"Notes":        notes,
	})
	if err != nil {
		logger.Error("failed to encode decision email payload", "vendorId", vendor.ID, "error", err)
		return
	}

	entry := &models.EmailOutbox{
		RecipientEmail: recipient,
		Subject:        subject,
		TemplateName:   templateName,
		Payload:        payload,
	}
	if err := s.outboxRepo.Enqueue(entry); err != nil {
		logger.Error("failed to enqueue decision email", "vendorId", vendor.ID, "error", err)
	}
}
