package repositories

import (
	"errors"
	"time"

	"weddinghub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	// CreateWithVendor creates the user and its vendor profile in one
	// transaction; a partial user-without-vendor state is never visible.
	CreateWithVendor(user *models.User, vendor *models.Vendor) error
	Update(user *models.User) error
	Delete(userID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Vendor").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Vendor").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) CreateWithVendor(user *models.User, vendor *models.Vendor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			return ErrUserAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		vendor.UserID = user.ID
		return tx.Create(vendor).Error
	})
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"name":              user.Name,
		"email":             user.Email,
		"role":              user.Role,
		"email_verified_at": user.EmailVerifiedAt,
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	// The vendor profile and everything it owns goes with the user.
	return r.db.Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := tx.Where("user_id = ?", userID).First(&vendor).Error; err == nil {
			if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.QuoteRequest{}).Error; err != nil {
				return err
			}
			if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.VendorPhoto{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&vendor).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
