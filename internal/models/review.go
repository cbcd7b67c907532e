package models

type Review struct {
	BaseModel
	VendorID      string `gorm:"not null;index"`
	ReviewerName  string `gorm:"not null"`
	ReviewerEmail string `gorm:"not null"`
	Rating        int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       string
	// Reviews are hidden until an admin approves them.
	Approved              bool `gorm:"default:false;index"`
	VerifiedMuslimWedding bool `gorm:"default:false"`
}
