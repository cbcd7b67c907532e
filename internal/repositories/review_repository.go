package repositories

import (
	"errors"

	"weddinghub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindApprovedByVendor(vendorID string, page, pageSize int) ([]models.Review, int64, error)
	FindPending(page, pageSize int) ([]models.Review, int64, error)
	Approve(reviewID string) error
	Delete(reviewID string) error
	AverageApprovedRating(vendorID string) (float64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindApprovedByVendor(vendorID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{}).
		Where("vendor_id = ? AND approved = ?", vendorID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(page, pageSize)
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) FindPending(page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{}).Where("approved = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(page, pageSize)
	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) Approve(reviewID string) error {
	result := r.db.Model(&models.Review{}).Where("id = ?", reviewID).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(reviewID string) error {
	result := r.db.Where("id = ?", reviewID).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) AverageApprovedRating(vendorID string) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).
		Where("vendor_id = ? AND approved = ?", vendorID, true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
