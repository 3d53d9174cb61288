package models

import "time"

type Promotion struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `json:"business_id"`

	Title string `gorm:"size:100;not null" json:"title"`

	// Discount is either a percentage label ("20%") or the literal
	// "Free Service" marker.
	Discount string `gorm:"size:20;not null" json:"discount"`

	ValidFrom *time.Time `json:"valid_from"`
	ValidTo   *time.Time `json:"valid_to"`
	Active    bool       `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
