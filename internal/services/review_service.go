package services

import (
	"errors"

	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/internal/validator"
	"weddinghub_backend/pkg/apperrors"
)

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	vendorRepo repositories.VendorRepository
	validator  *validator.Validator
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	vendorRepo repositories.VendorRepository,
	v *validator.Validator,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		vendorRepo: vendorRepo,
		validator:  v,
	}
}

// SubmitReview records a customer review. Reviews stay hidden until an
// admin approves them.
func (s *ReviewService) SubmitReview(vendorID string, req *dto.SubmitReviewRequest) (*dto.SubmitReviewResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidReviewRating
	}

	vendor, err := s.vendorRepo.FindByID(vendorID)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if vendor.VerificationStatus != models.VerificationApproved || !vendor.SubscriptionActive {
		return nil, apperrors.ErrVendorNotFound
	}

	review := &models.Review{
		VendorID:              vendor.ID,
		ReviewerName:          req.ReviewerName,
		ReviewerEmail:         req.ReviewerEmail,
		Rating:                req.Rating,
		Comment:               req.Comment,
		Approved:              false,
		VerifiedMuslimWedding: req.VerifiedMuslimWedding,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("review submitted", "reviewId", review.ID, "vendorId", vendor.ID)
	return &dto.SubmitReviewResponse{
		ReviewID: review.ID,
		Message:  "Review submitted. It will appear after moderation.",
	}, nil
}

// ListVendorReviews returns approved reviews only.
func (s *ReviewService) ListVendorReviews(vendorID string, req *dto.ListReviewsRequest) (*dto.ReviewListResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, total, err := s.reviewRepo.FindApprovedByVendor(vendorID, req.Page, req.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, reviewViewFrom(&reviews[i]))
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	return &dto.ReviewListResponse{
		Reviews:  views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListPendingReviews is the admin moderation queue, oldest first.
func (s *ReviewService) ListPendingReviews(req *dto.ListReviewsRequest) (*dto.ReviewListResponse, error) {
	reviews, total, err := s.reviewRepo.FindPending(req.Page, req.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, reviewViewFrom(&reviews[i]))
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	return &dto.ReviewListResponse{
		Reviews:  views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ApproveReview publishes a review and refreshes the vendor's cached
// average rating.
func (s *ReviewService) ApproveReview(reviewID string) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.reviewRepo.Approve(review.ID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.recalculateRating(review.VendorID); err != nil {
		// The review is live; a stale cached rating corrects itself on the
		// next approval.
		logger.Warn("rating refresh failed", "vendorId", review.VendorID, "error", err)
	}

	logger.Info("review approved", "reviewId", review.ID, "vendorId", review.VendorID)
	return nil
}

// RejectReview removes a review without publishing it.
func (s *ReviewService) RejectReview(reviewID string) error {
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReviewService) recalculateRating(vendorID string) error {
	avg, err := s.reviewRepo.AverageApprovedRating(vendorID)
	if err != nil {
		return err
	}
	return s.vendorRepo.UpdateRating(vendorID, avg)
}

func reviewViewFrom(review *models.Review) dto.ReviewView {
	return dto.ReviewView{
		ID:                    review.ID,
		VendorID:              review.VendorID,
		ReviewerName:          review.ReviewerName,
		Rating:                review.Rating,
		Comment:               review.Comment,
		VerifiedMuslimWedding: review.VerifiedMuslimWedding,
		CreatedAt:             review.CreatedAt,
	}
}
