package models

import "time"

// OpeningDiscount is a visitor's registration for the branch-opening promotion.
// The phone number doubles as the discount code, so it is unique across all registrations.
type OpeningDiscount struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	PhoneNumber  string    `gorm:"size:10;not null;uniqueIndex" json:"phoneNumber"`
	EmailAddress string    `gorm:"not null;index" json:"emailAddress"`
	Language     string    `gorm:"size:2;not null;default:'en'" json:"language"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name for the OpeningDiscount model
func (OpeningDiscount) TableName() string {
	return "opening_discounts"
}
