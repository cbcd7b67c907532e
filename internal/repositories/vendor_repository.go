package repositories

import (
	"errors"
	"time"

	"weddinghub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVendorNotFound = errors.New("vendor not found")

type VendorRepository interface {
	FindByID(id string) (*models.Vendor, error)
	FindByUserID(userID string) (*models.Vendor, error)
	FindWithFilter(criteria VendorFilter) ([]models.Vendor, int64, error)
	FindAll(criteria AdminVendorFilter) ([]models.Vendor, int64, error)
	Update(vendor *models.Vendor) error
	UpdateVerification(vendorID string, fields map[string]interface{}) error
	UpdateRating(vendorID string, rating float64) error

	// Photos
	AddPhoto(photo *models.VendorPhoto) error
	FindPhoto(photoID, vendorID string) (*models.VendorPhoto, error)
	SetMainPhoto(vendorID, photoID string) error
}

// VendorFilter drives the public directory search. Only approved vendors
// with an active subscription are visible.
type VendorFilter struct {
	Category    models.VendorCategory
	City        string
	State       string
	PriceRange  models.PriceRange
	Compliances []string
	Search      string
	Page        int
	PageSize    int
}

// AdminVendorFilter drives the admin listing; it sees every vendor.
type AdminVendorFilter struct {
	Status   models.VerificationStatus
	Page     int
	PageSize int
}

type VendorRepositoryImpl struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &VendorRepositoryImpl{db: db}
}

func (r *VendorRepositoryImpl) FindByID(id string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.Preload("User").Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepositoryImpl) FindByUserID(userID string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepositoryImpl) FindWithFilter(criteria VendorFilter) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	query := r.db.Model(&models.Vendor{}).
		Where("verification_status = ?", models.VerificationApproved).
		Where("subscription_active = ?", true)

	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}
	if criteria.State != "" {
		query = query.Where("state = ?", criteria.State)
	}
	if criteria.PriceRange != "" {
		query = query.Where("price_range = ?", criteria.PriceRange)
	}
	// Compliance tags live in a JSON text column; matching the quoted tag
	// works on both Postgres and sqlite.
	for _, tag := range criteria.Compliances {
		query = query.Where("islamic_compliances LIKE ?", `%"`+tag+`"%`)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("business_name LIKE ? OR description LIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(criteria.Page, criteria.PageSize)
	err := query.Preload("Photos", "is_main = ?", true).
		Order("rating DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&vendors).Error

	return vendors, total, err
}

func (r *VendorRepositoryImpl) FindAll(criteria AdminVendorFilter) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	query := r.db.Model(&models.Vendor{})

	if criteria.Status != "" {
		query = query.Where("verification_status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(criteria.Page, criteria.PageSize)
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&vendors).Error

	return vendors, total, err
}

func (r *VendorRepositoryImpl) Update(vendor *models.Vendor) error {
	result := r.db.Save(vendor)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}
	return nil
}

// UpdateVerification applies verification fields in a single UPDATE so
// verified and verification_status can never be observed out of sync.
func (r *VendorRepositoryImpl) UpdateVerification(vendorID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Vendor{}).Where("id = ?", vendorID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}
	return nil
}

func (r *VendorRepositoryImpl) UpdateRating(vendorID string, rating float64) error {
	result := r.db.Model(&models.Vendor{}).Where("id = ?", vendorID).Updates(map[string]interface{}{
		"rating":     rating,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}
	return nil
}

func (r *VendorRepositoryImpl) AddPhoto(photo *models.VendorPhoto) error {
	return r.db.Create(photo).Error
}

func (r *VendorRepositoryImpl) FindPhoto(photoID, vendorID string) (*models.VendorPhoto, error) {
	var photo models.VendorPhoto
	err := r.db.First(&photo, "id = ? AND vendor_id = ?", photoID, vendorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// SetMainPhoto flips the exclusive main flag inside a transaction.
func (r *VendorRepositoryImpl) SetMainPhoto(vendorID, photoID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VendorPhoto{}).
			Where("vendor_id = ?", vendorID).
			Update("is_main", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.VendorPhoto{}).
			Where("id = ? AND vendor_id = ?", photoID, vendorID).
			Update("is_main", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func paginate(page, pageSize int) (limit, offset int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
