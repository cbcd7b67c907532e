package handlers

import (
	"net/http"

	"weddinghub_backend/internal/middleware"
	"weddinghub_backend/internal/services"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService *services.QuoteService
}

func NewQuoteHandler(quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Submit)

	vendor := rg.Group("/vendor/quotes",
		middleware.AuthMiddleware(), middleware.RequireVendor())
	{
		vendor.GET("", h.ListOwn)
		vendor.POST("/:id/respond", h.Respond)
	}
}

// Submit takes the form post from the public vendor page and sends the
// browser back to the profile.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid quote form"))
		return
	}

	quote, err := h.quoteService.SubmitQuote(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/vendor/"+quote.VendorID+"?quote=sent")
}

func (h *QuoteHandler) ListOwn(c *gin.Context) {
	vendorID, ok := vendorIDFromSession(c)
	if !ok {
		return
	}

	req := dto.ListQuotesRequest{
		Status:   c.Query("status"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
	}

	resp, err := h.quoteService.ListQuotes(vendorID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *QuoteHandler) Respond(c *gin.Context) {
	vendorID, ok := vendorIDFromSession(c)
	if !ok {
		return
	}

	var req dto.RespondQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("action is required"))
		return
	}

	resp, err := h.quoteService.RespondQuote(vendorID, c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
