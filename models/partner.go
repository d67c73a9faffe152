package models

import "time"

// Partner is a brand or organisation whose logo appears in the partners strip.
// LogoURL holds either a small inline data URI or an "/objects/..." path served by the object endpoints.
type Partner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	NameAr    *string   `json:"nameAr"`
	LogoURL   *string   `gorm:"type:text" json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the Partner model
func (Partner) TableName() string {
	return "partners"
}
