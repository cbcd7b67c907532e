package dto

import "time"

type SubmitReviewRequest struct {
	VendorID              string `json:"vendorId" binding:"required" validate:"required"`
	ReviewerName          string `json:"reviewerName" binding:"required" validate:"required,min=2,max=100"`
	ReviewerEmail         string `json:"reviewerEmail" binding:"required" validate:"required,email"`
	Rating                int    `json:"rating" binding:"required" validate:"required,gte=1,lte=5"`
	Comment               string `json:"comment" validate:"max=5000"`
	VerifiedMuslimWedding bool   `json:"verifiedMuslimWedding"`
}

type ReviewView struct {
	ID                    string    `json:"id"`
	VendorID              string    `json:"vendorId"`
	ReviewerName          string    `json:"reviewerName"`
	Rating                int       `json:"rating"`
	Comment               string    `json:"comment,omitempty"`
	VerifiedMuslimWedding bool      `json:"verifiedMuslimWedding"`
	CreatedAt             time.Time `json:"createdAt"`
}

type SubmitReviewResponse struct {
	ReviewID string `json:"reviewId"`
	Message  string `json:"message"`
}

type ReviewListResponse struct {
	Reviews  []ReviewView `json:"reviews"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

type ListReviewsRequest struct {
	Page     int `form:"page" validate:"gte=0"`
	PageSize int `form:"pageSize" validate:"gte=0,lte=100"`
}
