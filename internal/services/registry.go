package services

import (
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/storage"
	"weddinghub_backend/internal/validator"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over shared repositories.
type ServiceContainer struct {
	Auth         *AuthService
	Vendor       *VendorService
	Verification *VerificationService
	Quote        *QuoteService
	Review       *ReviewService

	UserRepo   repositories.UserRepository
	VendorRepo repositories.VendorRepository
	QuoteRepo  repositories.QuoteRepository
	ReviewRepo repositories.ReviewRepository
	OutboxRepo repositories.OutboxRepository
}

func NewServiceContainer(db *gorm.DB, store storage.Storage) *ServiceContainer {
	v := validator.New()

	userRepo := repositories.NewUserRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	outboxRepo := repositories.NewOutboxRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo),
		Vendor:       NewVendorService(userRepo, vendorRepo, store, v),
		Verification: NewVerificationService(vendorRepo, outboxRepo, v),
		Quote:        NewQuoteService(quoteRepo, vendorRepo, outboxRepo, v),
		Review:       NewReviewService(reviewRepo, vendorRepo, v),

		UserRepo:   userRepo,
		VendorRepo: vendorRepo,
		QuoteRepo:  quoteRepo,
		ReviewRepo: reviewRepo,
		OutboxRepo: outboxRepo,
	}
}
