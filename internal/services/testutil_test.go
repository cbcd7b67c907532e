package services

import (
	"testing"

	"weddinghub_backend/internal/auth"
	"weddinghub_backend/internal/database"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	auth.InitJWT("test-secret", 0, 0)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive for the whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestContainer(t *testing.T) (*ServiceContainer, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	store, err := storage.NewStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/files",
	})
	require.NoError(t, err)

	return NewServiceContainer(db, store), db
}

func createApprovedVendor(t *testing.T, db *gorm.DB, email, businessName string) *models.Vendor {
	t.Helper()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	user := &models.User{
		Name:         "Owner of " + businessName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleVendor,
	}
	vendor := &models.Vendor{
		BusinessName:       businessName,
		Category:           models.CategoryCaterers,
		Phone:              "+1-555-0100",
		Email:              email,
		Address:            "1 Main St",
		City:               "Dearborn",
		State:              "MI",
		ZipCode:            "48120",
		PriceRange:         models.PriceRangeModerate,
		Verified:           true,
		VerificationStatus: models.VerificationApproved,
		SubscriptionActive: true,
	}

	userRepo := repositories.NewUserRepository(db)
	require.NoError(t, userRepo.CreateWithVendor(user, vendor))
	vendor.User = user
	return vendor
}

func createPendingVendor(t *testing.T, db *gorm.DB, email, businessName string) *models.Vendor {
	t.Helper()

	user := &models.User{
		Name:  "Owner of " + businessName,
		Email: email,
		Role:  models.UserRoleVendor,
	}
	vendor := &models.Vendor{
		BusinessName:       businessName,
		Category:           models.CategoryVenues,
		Phone:              "+1-555-0101",
		Email:              email,
		Address:            "2 Main St",
		City:               "Dearborn",
		State:              "MI",
		ZipCode:            "48120",
		PriceRange:         models.PriceRangeBudget,
		VerificationStatus: models.VerificationPending,
		SubscriptionActive: true,
	}

	userRepo := repositories.NewUserRepository(db)
	require.NoError(t, userRepo.CreateWithVendor(user, vendor))
	vendor.User = user
	return vendor
}

func createQuote(t *testing.T, db *gorm.DB, vendorID, name, email, message string) *models.QuoteRequest {
	t.Helper()

	quote := &models.QuoteRequest{
		VendorID:      vendorID,
		CustomerName:  name,
		CustomerEmail: email,
		Message:       message,
		Status:        models.QuoteStatusPending,
	}
	require.NoError(t, repositories.NewQuoteRepository(db).Create(quote))
	return quote
}

func createAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	admin := &models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: mustHash(t, "admin-password"),
		Role:         models.UserRoleAdmin,
	}
	require.NoError(t, repositories.NewUserRepository(db).Create(admin))
	return admin
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func countOutbox(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.EmailOutbox{}).Count(&count).Error)
	return count
}
