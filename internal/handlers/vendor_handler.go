package handlers

import (
	"mime/multipart"
	"net/http"

	"weddinghub_backend/internal/middleware"
	"weddinghub_backend/internal/services"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	vendorService *services.VendorService
	reviewService *services.ReviewService
}

func NewVendorHandler(vendorService *services.VendorService, reviewService *services.ReviewService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, reviewService: reviewService}
}

func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/vendor/register", h.Register)

	rg.GET("/vendors", h.Search)
	rg.GET("/vendors/:id", h.GetByID)

	photos := rg.Group("/vendor/photos",
		middleware.AuthMiddleware(), middleware.RequireVendor())
	{
		photos.POST("", h.AddPhoto)
		photos.POST("/:id/main", h.SetMainPhoto)
	}
}

// Register accepts the multipart vendor application, optional work-sample
// files included.
func (h *VendorHandler) Register(c *gin.Context) {
	var req dto.RegisterVendorRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid registration form"))
		return
	}

	resp, err := h.vendorService.RegisterVendor(c.Request.Context(), &req, workSampleFiles(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// workSampleFiles pulls the optional upload list from the multipart form.
func workSampleFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["workSamples"]
}

func (h *VendorHandler) Search(c *gin.Context) {
	req := dto.SearchVendorsRequest{
		Category:    c.Query("category"),
		City:        c.Query("city"),
		State:       c.Query("state"),
		PriceRange:  c.Query("priceRange"),
		Compliances: c.QueryArray("compliance"),
		Search:      c.Query("search"),
		Page:        queryInt(c, "page"),
		PageSize:    queryInt(c, "pageSize"),
	}

	resp, err := h.vendorService.SearchVendors(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID returns the public profile with its approved reviews.
func (h *VendorHandler) GetByID(c *gin.Context) {
	detail, err := h.vendorService.GetVendor(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	reviews, err := h.reviewService.ListVendorReviews(detail.ID, &dto.ListReviewsRequest{})
	if err == nil {
		detail.Reviews = reviews.Reviews
	} else {
		detail.Reviews = []dto.ReviewView{}
	}

	c.JSON(http.StatusOK, gin.H{"vendor": detail})
}

func (h *VendorHandler) AddPhoto(c *gin.Context) {
	vendorID, ok := vendorIDFromSession(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("photo file is required"))
		return
	}

	resp, svcErr := h.vendorService.AddPhoto(c.Request.Context(), vendorID, fh, c.PostForm("alt"))
	if svcErr != nil {
		apperrors.HandleError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VendorHandler) SetMainPhoto(c *gin.Context) {
	vendorID, ok := vendorIDFromSession(c)
	if !ok {
		return
	}

	if err := h.vendorService.SetMainPhoto(vendorID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Main photo updated"})
}
