package models

import (
	"time"

	"gorm.io/datatypes"
)

type Vendor struct {
	BaseModel
	UserID       string         `gorm:"uniqueIndex;not null"`
	BusinessName string         `gorm:"not null"`
	Category     VendorCategory `gorm:"type:varchar(30);not null;index"`
	Description  string

	// Contact
	Phone    string `gorm:"not null"`
	Whatsapp string
	Website  string
	Email    string `gorm:"not null"`

	// Address
	Address string `gorm:"not null"`
	City    string `gorm:"not null;index"`
	State   string `gorm:"not null;index"`
	ZipCode string `gorm:"not null"`

	PriceRange PriceRange `gorm:"type:varchar(20);not null;index"`
	// Stored as a JSON text column so tag filters work identically on
	// Postgres and the sqlite test databases.
	IslamicCompliances datatypes.JSONSlice[string] `gorm:"type:text"`

	// Extended business profile
	YearsInBusiness int
	ServiceAreas    datatypes.JSONSlice[string] `gorm:"type:text"`
	MinCapacity     int
	MaxCapacity     int
	EventTypes      datatypes.JSONSlice[string] `gorm:"type:text"`
	BusinessHours   string
	PaymentMethods  datatypes.JSONSlice[string] `gorm:"type:text"`

	// Verification. Invariant: Verified == (VerificationStatus == APPROVED).
	Verified           bool               `gorm:"default:false"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	VerificationNotes  string
	VerifiedAt         *time.Time
	VerifiedBy         string

	// Cached average of approved reviews.
	Rating             float64 `gorm:"default:0"`
	SubscriptionActive bool    `gorm:"default:true"`

	// Relations
	User          *User          `gorm:"foreignKey:UserID"`
	Photos        []VendorPhoto  `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Reviews       []Review       `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	QuoteRequests []QuoteRequest `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

type VendorPhoto struct {
	BaseModel
	VendorID string `gorm:"not null;index"`
	URL      string `gorm:"not null"`
	Alt      string
	// At most one main photo per vendor, enforced by the photo service.
	IsMain    bool `gorm:"default:false"`
	SortOrder int  `gorm:"default:0"`
}
