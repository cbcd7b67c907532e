package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"weddinghub_backend/internal/auth"
	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/internal/storage"
	"weddinghub_backend/internal/validator"
	"weddinghub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VendorService struct {
	userRepo   repositories.UserRepository
	vendorRepo repositories.VendorRepository
	storage    storage.Storage
	validator  *validator.Validator
}

func NewVendorService(
	userRepo repositories.UserRepository,
	vendorRepo repositories.VendorRepository,
	store storage.Storage,
	v *validator.Validator,
) *VendorService {
	return &VendorService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		storage:    store,
		validator:  v,
	}
}

// RegisterVendor creates the account and the vendor profile atomically.
// The new vendor always starts in PENDING verification.
func (s *VendorService) RegisterVendor(ctx context.Context, req *dto.RegisterVendorRequest, workSamples []*multipart.FileHeader) (*dto.RegisterVendorResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         models.UserRoleVendor,
	}
	vendor := &models.Vendor{
		BusinessName:       req.BusinessName,
		Category:           models.VendorCategory(req.Category),
		Description:        req.Description,
		Phone:              req.Phone,
		Whatsapp:           req.Whatsapp,
		Website:            req.Website,
		Email:              user.Email,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		PriceRange:         models.PriceRange(req.PriceRange),
		IslamicCompliances: datatypes.JSONSlice[string](req.IslamicCompliances),
		YearsInBusiness:    req.YearsInBusiness,
		ServiceAreas:       datatypes.JSONSlice[string](req.ServiceAreas),
		MinCapacity:        req.MinCapacity,
		MaxCapacity:        req.MaxCapacity,
		EventTypes:         datatypes.JSONSlice[string](req.EventTypes),
		BusinessHours:      req.BusinessHours,
		PaymentMethods:     datatypes.JSONSlice[string](req.PaymentMethods),
		VerificationStatus: models.VerificationPending,
		VerificationNotes:  "Application received. Awaiting review.",
		SubscriptionActive: true,
	}

	if err := s.userRepo.CreateWithVendor(user, vendor); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Work samples are best-effort: a failed upload does not undo the
	// registration.
	for i, fh := range workSamples {
		if err := s.saveWorkSample(ctx, vendor.ID, i, fh); err != nil {
			logger.Warn("work sample upload failed",
				"vendorId", vendor.ID, "file", fh.Filename, "error", err)
		}
	}

	logger.Info("vendor registered",
		"vendorId", vendor.ID, "userId", user.ID, "category", vendor.Category)

	return &dto.RegisterVendorResponse{
		VendorID: vendor.ID,
		UserID:   user.ID,
		Status:   string(models.VerificationPending),
		Message:  "Application received. Awaiting review.",
	}, nil
}

func (s *VendorService) saveWorkSample(ctx context.Context, vendorID string, index int, fh *multipart.FileHeader) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	path := fmt.Sprintf("vendors/%s/samples/%d%s", vendorID, index, filepath.Ext(fh.Filename))
	if err := s.storage.Save(ctx, path, src); err != nil {
		return err
	}

	return s.vendorRepo.AddPhoto(&models.VendorPhoto{
		VendorID:  vendorID,
		URL:       s.storage.GetURL(path),
		Alt:       fh.Filename,
		IsMain:    index == 0,
		SortOrder: index,
	})
}

// SearchVendors serves the public directory. Only approved vendors with an
// active subscription appear.
func (s *VendorService) SearchVendors(req *dto.SearchVendorsRequest) (*dto.VendorListResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	vendors, total, err := s.vendorRepo.FindWithFilter(repositories.VendorFilter{
		Category:    models.VendorCategory(req.Category),
		City:        req.City,
		State:       req.State,
		PriceRange:  models.PriceRange(req.PriceRange),
		Compliances: req.Compliances,
		Search:      req.Search,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.VendorSummary, 0, len(vendors))
	for i := range vendors {
		summaries = append(summaries, vendorSummaryFrom(&vendors[i]))
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	return &dto.VendorListResponse{
		Vendors:  summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetVendor returns the public profile. Unapproved or unsubscribed vendors
// are indistinguishable from missing ones.
func (s *VendorService) GetVendor(id string) (*dto.VendorDetail, error) {
	vendor, err := s.vendorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if vendor.VerificationStatus != models.VerificationApproved || !vendor.SubscriptionActive {
		return nil, apperrors.ErrVendorNotFound
	}

	detail := &dto.VendorDetail{
		VendorSummary:   vendorSummaryFrom(vendor),
		Phone:           vendor.Phone,
		Whatsapp:        vendor.Whatsapp,
		Website:         vendor.Website,
		Email:           vendor.Email,
		Address:         vendor.Address,
		ZipCode:         vendor.ZipCode,
		YearsInBusiness: vendor.YearsInBusiness,
		ServiceAreas:    vendor.ServiceAreas,
		MinCapacity:     vendor.MinCapacity,
		MaxCapacity:     vendor.MaxCapacity,
		EventTypes:      vendor.EventTypes,
		BusinessHours:   vendor.BusinessHours,
		PaymentMethods:  vendor.PaymentMethods,
		Photos:          make([]dto.VendorPhotoResponse, 0, len(vendor.Photos)),
		CreatedAt:       vendor.CreatedAt,
	}
	for _, p := range vendor.Photos {
		detail.Photos = append(detail.Photos, dto.VendorPhotoResponse{
			ID:        p.ID,
			URL:       p.URL,
			Alt:       p.Alt,
			IsMain:    p.IsMain,
			SortOrder: p.SortOrder,
		})
	}
	return detail, nil
}

// AddPhoto uploads a gallery photo for the vendor's own profile.
func (s *VendorService) AddPhoto(ctx context.Context, vendorID string, fh *multipart.FileHeader, alt string) (*dto.AddPhotoResponse, error) {
	vendor, err := s.vendorRepo.FindByID(vendorID)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Cannot read uploaded file")
	}
	defer src.Close()

	path := fmt.Sprintf("vendors/%s/gallery/%d%s", vendor.ID, time.Now().UnixNano(), filepath.Ext(fh.Filename))
	if err := s.storage.Save(ctx, path, src); err != nil {
		return nil, apperrors.ServiceUnavailable(err, "storage")
	}

	photo := &models.VendorPhoto{
		VendorID:  vendor.ID,
		URL:       s.storage.GetURL(path),
		Alt:       alt,
		IsMain:    len(vendor.Photos) == 0,
		SortOrder: len(vendor.Photos),
	}
	if err := s.vendorRepo.AddPhoto(photo); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AddPhotoResponse{Photo: dto.VendorPhotoResponse{
		ID:        photo.ID,
		URL:       photo.URL,
		Alt:       photo.Alt,
		IsMain:    photo.IsMain,
		SortOrder: photo.SortOrder,
	}}, nil
}

// SetMainPhoto makes one gallery photo the directory card image.
func (s *VendorService) SetMainPhoto(vendorID, photoID string) error {
	err := s.vendorRepo.SetMainPhoto(vendorID, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func vendorSummaryFrom(vendor *models.Vendor) dto.VendorSummary {
	summary := dto.VendorSummary{
		ID:                 vendor.ID,
		BusinessName:       vendor.BusinessName,
		Category:           string(vendor.Category),
		Description:        vendor.Description,
		City:               vendor.City,
		State:              vendor.State,
		PriceRange:         string(vendor.PriceRange),
		IslamicCompliances: vendor.IslamicCompliances,
		Rating:             vendor.Rating,
		Verified:           vendor.Verified,
	}
	if summary.IslamicCompliances == nil {
		summary.IslamicCompliances = []string{}
	}
	for _, p := range vendor.Photos {
		if p.IsMain {
			summary.MainPhotoURL = p.URL
			break
		}
	}
	return summary
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
