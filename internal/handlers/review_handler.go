package handlers

import (
	"net/http"

	"weddinghub_backend/internal/services"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Submit)
	rg.GET("/vendors/:id/reviews", h.ListForVendor)
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("vendorId, reviewerName, reviewerEmail and rating are required"))
		return
	}

	resp, err := h.reviewService.SubmitReview(req.VendorID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) ListForVendor(c *gin.Context) {
	req := dto.ListReviewsRequest{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
	}

	resp, err := h.reviewService.ListVendorReviews(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
