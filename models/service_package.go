package models

import "time"

// ServicePackage is a care plan advertised on the site (e.g. "Basic Care, 299 SAR/year")
type ServicePackage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	NameAr     *string   `json:"nameAr"`
	Price      string    `gorm:"not null" json:"price"` // free text, e.g. "299"
	Period     string    `gorm:"not null" json:"period"`
	PeriodAr   *string   `json:"periodAr"`
	Popular    bool      `gorm:"not null;default:false" json:"popular"`
	Features   []string  `gorm:"type:text;serializer:json;not null" json:"features"`
	FeaturesAr []string  `gorm:"type:text;serializer:json" json:"featuresAr"` // nil is stored as NULL
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the ServicePackage model
func (ServicePackage) TableName() string {
	return "service_packages"
}
