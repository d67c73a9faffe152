package models

import "time"

// CustomerReview is a testimonial shown in the reviews carousel
type CustomerReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	NameAr    *string   `json:"nameAr"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the CustomerReview model
func (CustomerReview) TableName() string {
	return "customer_reviews"
}
