package handlers

import (
	"weddinghub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth   *AuthHandler
	Vendor *VendorHandler
	Admin  *AdminHandler
	Quote  *QuoteHandler
	Review *ReviewHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		Auth:   NewAuthHandler(sc.Auth),
		Vendor: NewVendorHandler(sc.Vendor, sc.Review),
		Admin:  NewAdminHandler(sc.Verification, sc.Quote, sc.Review),
		Quote:  NewQuoteHandler(sc.Quote),
		Review: NewReviewHandler(sc.Review),
	}
}

// RegisterAll mounts every handler on the group.
func (h *AppHandlers) RegisterAll(rg *gin.RouterGroup) {
	h.Auth.RegisterRoutes(rg)
	h.Vendor.RegisterRoutes(rg)
	h.Admin.RegisterRoutes(rg)
	h.Quote.RegisterRoutes(rg)
	h.Review.RegisterRoutes(rg)
}
