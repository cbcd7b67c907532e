package models

import "time"

type QuoteRequest struct {
	BaseModel
	VendorID      string `gorm:"not null;index"`
	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null"`
	CustomerPhone string
	EventDate     *time.Time
	Message       string      `gorm:"not null"`
	Status        QuoteStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`

	// Vendor response. Set exactly once; the record is immutable after.
	VendorResponse    string
	ProposedPrice     *float64
	AdditionalDetails string
	RespondedAt       *time.Time
}

// DuplicateKey is the tuple duplicate detection matches on.
func (q *QuoteRequest) DuplicateKey() string {
	return q.CustomerName + "\x00" + q.CustomerEmail + "\x00" + q.Message
}
