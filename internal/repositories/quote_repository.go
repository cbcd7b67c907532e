package repositories

import (
	"errors"

	"weddinghub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuoteNotFound = errors.New("quote request not found")

type QuoteRepository interface {
	Create(quote *models.QuoteRequest) error
	FindByID(id string) (*models.QuoteRequest, error)
	// FindByIDForVendor scopes the lookup to the owning vendor; a quote
	// belonging to someone else is indistinguishable from a missing one.
	FindByIDForVendor(id, vendorID string) (*models.QuoteRequest, error)
	FindByVendor(vendorID string, status models.QuoteStatus, page, pageSize int) ([]models.QuoteRequest, int64, error)
	// FindAllByVendorNewestFirst returns every quote of one vendor in the
	// creation order duplicate detection depends on.
	FindAllByVendorNewestFirst(vendorID string) ([]models.QuoteRequest, error)
	UpdateResponse(quote *models.QuoteRequest) error
	DeleteByIDs(vendorID string, ids []string) (int64, error)
	VendorIDsWithQuotes() ([]string, error)
}

type QuoteRepositoryImpl struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &QuoteRepositoryImpl{db: db}
}

func (r *QuoteRepositoryImpl) Create(quote *models.QuoteRequest) error {
	return r.db.Create(quote).Error
}

func (r *QuoteRepositoryImpl) FindByID(id string) (*models.QuoteRequest, error) {
	var quote models.QuoteRequest
	err := r.db.First(&quote, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepositoryImpl) FindByIDForVendor(id, vendorID string) (*models.QuoteRequest, error) {
	var quote models.QuoteRequest
	err := r.db.First(&quote, "id = ? AND vendor_id = ?", id, vendorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepositoryImpl) FindByVendor(vendorID string, status models.QuoteStatus, page, pageSize int) ([]models.QuoteRequest, int64, error) {
	var quotes []models.QuoteRequest
	query := r.db.Model(&models.QuoteRequest{}).Where("vendor_id = ?", vendorID)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(page, pageSize)
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&quotes).Error
	return quotes, total, err
}

func (r *QuoteRepositoryImpl) FindAllByVendorNewestFirst(vendorID string) ([]models.QuoteRequest, error) {
	var quotes []models.QuoteRequest
	err := r.db.Where("vendor_id = ?", vendorID).
		Order("created_at DESC, id DESC").
		Find(&quotes).Error
	return quotes, err
}

func (r *QuoteRepositoryImpl) UpdateResponse(quote *models.QuoteRequest) error {
	result := r.db.Model(quote).Updates(map[string]interface{}{
		"status":             quote.Status,
		"vendor_response":    quote.VendorResponse,
		"proposed_price":     quote.ProposedPrice,
		"additional_details": quote.AdditionalDetails,
		"responded_at":       quote.RespondedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

// DeleteByIDs removes the given quotes of one vendor in a single batch.
func (r *QuoteRepositoryImpl) DeleteByIDs(vendorID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Where("vendor_id = ? AND id IN ?", vendorID, ids).Delete(&models.QuoteRequest{})
	return result.RowsAffected, result.Error
}

func (r *QuoteRepositoryImpl) VendorIDsWithQuotes() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.QuoteRequest{}).
		Distinct("vendor_id").
		Pluck("vendor_id", &ids).Error
	return ids, err
}
