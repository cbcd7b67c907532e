package models

import (
	"time"

	"gorm.io/datatypes"
)

// EmailOutbox is a durable record of a notification to deliver. Workflows
// enqueue a row in the same request that mutates state; a background
// dispatcher sends it later. Delivery failure never rolls back a workflow.
type EmailOutbox struct {
	BaseModel
	RecipientEmail string         `gorm:"not null"`
	Subject        string         `gorm:"not null"`
	TemplateName   string         `gorm:"not null"`
	Payload        datatypes.JSON `gorm:"type:text"`
	Status         OutboxStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int            `gorm:"default:0"`
	LastError      string
	SentAt         *time.Time
}
