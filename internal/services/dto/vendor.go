package dto

import "time"

// RegisterVendorRequest is the multipart vendor application form. Work
// sample files arrive separately through the multipart reader.
type RegisterVendorRequest struct {
	// Account
	Name     string `form:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`

	// Business
	BusinessName string `form:"businessName" validate:"required,min=2,max=200"`
	Category     string `form:"category" validate:"required,is-vendor-category"`
	Description  string `form:"description" validate:"max=5000"`

	// Contact
	Phone    string `form:"phone" validate:"required"`
	Whatsapp string `form:"whatsapp"`
	Website  string `form:"website"`

	// Address
	Address string `form:"address" validate:"required"`
	City    string `form:"city" validate:"required"`
	State   string `form:"state" validate:"required"`
	ZipCode string `form:"zipCode" validate:"required"`

	PriceRange         string   `form:"priceRange" validate:"required,is-price-range"`
	IslamicCompliances []string `form:"islamicCompliances" validate:"dive,is-compliance-tag"`

	YearsInBusiness int      `form:"yearsInBusiness" validate:"gte=0"`
	ServiceAreas    []string `form:"serviceAreas"`
	MinCapacity     int      `form:"minCapacity" validate:"gte=0"`
	MaxCapacity     int      `form:"maxCapacity" validate:"gte=0"`
	EventTypes      []string `form:"eventTypes"`
	BusinessHours   string   `form:"businessHours"`
	PaymentMethods  []string `form:"paymentMethods"`
}

type RegisterVendorResponse struct {
	VendorID string `json:"vendorId"`
	UserID   string `json:"userId"`
	Status   string `json:"verificationStatus"`
	Message  string `json:"message"`
}

// SearchVendorsRequest drives the public directory.
type SearchVendorsRequest struct {
	Category    string   `form:"category" validate:"omitempty,is-vendor-category"`
	City        string   `form:"city"`
	State       string   `form:"state"`
	PriceRange  string   `form:"priceRange" validate:"omitempty,is-price-range"`
	Compliances []string `form:"compliance" validate:"dive,is-compliance-tag"`
	Search      string   `form:"search"`
	Page        int      `form:"page" validate:"gte=0"`
	PageSize    int      `form:"pageSize" validate:"gte=0,lte=100"`
}

type VendorPhotoResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	IsMain    bool   `json:"isMain"`
	SortOrder int    `json:"sortOrder"`
}

// VendorSummary is the directory card shape.
type VendorSummary struct {
	ID                 string   `json:"id"`
	BusinessName       string   `json:"businessName"`
	Category           string   `json:"category"`
	Description        string   `json:"description,omitempty"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	PriceRange         string   `json:"priceRange"`
	IslamicCompliances []string `json:"islamicCompliances"`
	Rating             float64  `json:"rating"`
	Verified           bool     `json:"verified"`
	MainPhotoURL       string   `json:"mainPhotoUrl,omitempty"`
}

// VendorDetail is the full public profile.
type VendorDetail struct {
	VendorSummary
	Phone           string                `json:"phone"`
	Whatsapp        string                `json:"whatsapp,omitempty"`
	Website         string                `json:"website,omitempty"`
	Email           string                `json:"email"`
	Address         string                `json:"address"`
	ZipCode         string                `json:"zipCode"`
	YearsInBusiness int                   `json:"yearsInBusiness"`
	ServiceAreas    []string              `json:"serviceAreas"`
	MinCapacity     int                   `json:"minCapacity"`
	MaxCapacity     int                   `json:"maxCapacity"`
	EventTypes      []string              `json:"eventTypes"`
	BusinessHours   string                `json:"businessHours,omitempty"`
	PaymentMethods  []string              `json:"paymentMethods"`
	Photos          []VendorPhotoResponse `json:"photos"`
	Reviews         []ReviewView          `json:"reviews"`
	CreatedAt       time.Time             `json:"createdAt"`
}

type VendorListResponse struct {
	Vendors  []VendorSummary `json:"vendors"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// --- Admin ---

type AdminListVendorsRequest struct {
	Status   string `form:"status" validate:"omitempty,is-verification-status"`
	Page     int    `form:"page" validate:"gte=0"`
	PageSize int    `form:"pageSize" validate:"gte=0,lte=100"`
}

// AdminVendorView includes verification fields hidden from the public
// directory.
type AdminVendorView struct {
	ID                 string     `json:"id"`
	BusinessName       string     `json:"businessName"`
	Category           string     `json:"category"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	OwnerName          string     `json:"ownerName"`
	OwnerEmail         string     `json:"ownerEmail"`
	Verified           bool       `json:"verified"`
	VerificationStatus string     `json:"verificationStatus"`
	VerificationNotes  string     `json:"verificationNotes,omitempty"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	VerifiedBy         string     `json:"verifiedBy,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type AdminVendorListResponse struct {
	Vendors  []AdminVendorView `json:"vendors"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// VerifyVendorRequest moves a vendor through the verification state
// machine.
type VerifyVendorRequest struct {
	VendorID string `json:"vendorId" binding:"required" validate:"required"`
	Status   string `json:"status" binding:"required" validate:"required,is-verification-status"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type VerifyVendorResponse struct {
	VendorID           string `json:"vendorId"`
	Verified           bool   `json:"verified"`
	VerificationStatus string `json:"verificationStatus"`
	VerificationNotes  string `json:"verificationNotes,omitempty"`
}

// AddPhotoResponse is returned after a gallery upload.
type AddPhotoResponse struct {
	Photo VendorPhotoResponse `json:"photo"`
}
