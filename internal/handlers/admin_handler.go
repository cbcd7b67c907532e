package handlers

import (
	"net/http"

	"weddinghub_backend/internal/middleware"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/services"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups every admin-only operation behind the role check.
type AdminHandler struct {
	verificationService *services.VerificationService
	quoteService        *services.QuoteService
	reviewService       *services.ReviewService
}

func NewAdminHandler(
	verificationService *services.VerificationService,
	quoteService *services.QuoteService,
	reviewService *services.ReviewService,
) *AdminHandler {
	return &AdminHandler{
		verificationService: verificationService,
		quoteService:        quoteService,
		reviewService:       reviewService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/vendors", h.ListVendors)
		admin.POST("/verify-vendor", h.VerifyVendor)

		admin.GET("/duplicate-quotes", h.DetectDuplicateQuotes)
		admin.POST("/cleanup-duplicates", h.CleanupDuplicateQuotes)

		admin.GET("/reviews", h.ListPendingReviews)
		admin.POST("/reviews/:id/approve", h.ApproveReview)
		admin.DELETE("/reviews/:id", h.RejectReview)
	}
}

func (h *AdminHandler) ListVendors(c *gin.Context) {
	req := dto.AdminListVendorsRequest{
		Status:   c.Query("status"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
	}

	resp, err := h.verificationService.ListVendors(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) VerifyVendor(c *gin.Context) {
	var req dto.VerifyVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("vendorId and status are required"))
		return
	}

	claims := middleware.GetClaims(c)
	resp, err := h.verificationService.VerifyVendor(claims.Email, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DetectDuplicateQuotes(c *gin.Context) {
	resp, err := h.quoteService.DetectDuplicates()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) CleanupDuplicateQuotes(c *gin.Context) {
	resp, err := h.quoteService.CleanupDuplicates()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListPendingReviews(c *gin.Context) {
	req := dto.ListReviewsRequest{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
	}

	resp, err := h.reviewService.ListPendingReviews(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ApproveReview(c *gin.Context) {
	if err := h.reviewService.ApproveReview(c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review approved"})
}

func (h *AdminHandler) RejectReview(c *gin.Context) {
	if err := h.reviewService.RejectReview(c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review rejected"})
}
