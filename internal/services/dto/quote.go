package dto

import "time"

// SubmitQuoteRequest is the public quote form. It arrives form-encoded
// from the vendor profile page.
type SubmitQuoteRequest struct {
	VendorID      string `form:"vendorId" validate:"required"`
	CustomerName  string `form:"customerName" validate:"required,min=2,max=100"`
	CustomerEmail string `form:"customerEmail" validate:"required,email"`
	CustomerPhone string `form:"customerPhone"`
	EventDate     string `form:"eventDate"`
	Message       string `form:"message" validate:"required,min=10,max=5000"`
}

type QuoteView struct {
	ID                string     `json:"id"`
	VendorID          string     `json:"vendorId"`
	CustomerName      string     `json:"customerName"`
	CustomerEmail     string     `json:"customerEmail"`
	CustomerPhone     string     `json:"customerPhone,omitempty"`
	EventDate         *time.Time `json:"eventDate,omitempty"`
	Message           string     `json:"message"`
	Status            string     `json:"status"`
	VendorResponse    string     `json:"vendorResponse,omitempty"`
	ProposedPrice     *float64   `json:"proposedPrice,omitempty"`
	AdditionalDetails string     `json:"additionalDetails,omitempty"`
	RespondedAt       *time.Time `json:"respondedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type ListQuotesRequest struct {
	Status   string `form:"status" validate:"omitempty,oneof=PENDING RESPONDED DECLINED"`
	Page     int    `form:"page" validate:"gte=0"`
	PageSize int    `form:"pageSize" validate:"gte=0,lte=100"`
}

type QuoteListResponse struct {
	Quotes   []QuoteView `json:"quotes"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// RespondQuoteRequest records the vendor's single response. Action accept
// and respond both mark the quote RESPONDED; decline marks it DECLINED.
type RespondQuoteRequest struct {
	Action            string   `json:"action" binding:"required" validate:"required,is-quote-action"`
	Response          string   `json:"message" validate:"max=5000"`
	ProposedPrice     *float64 `json:"proposedPrice" validate:"omitempty,gte=0"`
	AdditionalDetails string   `json:"additionalDetails" validate:"max=5000"`
}

// --- Duplicate maintenance ---

// DuplicateGroup describes one set of identical quotes for a vendor. The
// retained entry is the newest; the rest are removable.
type DuplicateGroup struct {
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	RetainedID    string   `json:"retainedId"`
	DuplicateIDs  []string `json:"duplicateIds"`
	Count         int      `json:"count"`
}

type VendorDuplicateReport struct {
	VendorID       string           `json:"vendorId"`
	BusinessName   string           `json:"businessName"`
	TotalQuotes    int              `json:"totalQuotes"`
	UniqueQuotes   int              `json:"uniqueQuotes"`
	DuplicateCount int              `json:"duplicateCount"`
	Groups         []DuplicateGroup `json:"groups,omitempty"`
}

type DuplicateScanResponse struct {
	VendorsProcessed      int                     `json:"vendorsProcessed"`
	VendorsWithDuplicates int                     `json:"vendorsWithDuplicates"`
	TotalDuplicates       int                     `json:"totalDuplicates"`
	Results               []VendorDuplicateReport `json:"results"`
}

type CleanupResultEntry struct {
	VendorID     string `json:"vendorId"`
	BusinessName string `json:"businessName"`
	Removed      int64  `json:"removed"`
	Remaining    int    `json:"remaining"`
}

type CleanupDuplicatesResponse struct {
	TotalRemoved          int64                `json:"totalRemoved"`
	VendorsProcessed      int                  `json:"vendorsProcessed"`
	VendorsWithDuplicates int                  `json:"vendorsWithDuplicates"`
	Results               []CleanupResultEntry `json:"results"`
}
