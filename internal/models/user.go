package models

import "time"

type User struct {
	BaseModel
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`
	// Empty hash means a legacy passwordless account; such accounts
	// cannot log in until an admin sets a password.
	PasswordHash    string
	Role            UserRole `gorm:"type:varchar(20);not null;default:'customer'"`
	EmailVerifiedAt *time.Time

	// Relations
	Vendor *Vendor `gorm:"foreignKey:UserID"`
}
