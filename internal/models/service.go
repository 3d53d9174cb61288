package models

import "time"

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `json:"business_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	// Promotional pricing carried on the service itself. When OnPromotion
	// is set, Price is already the discounted value and OriginalPrice
	// holds the pre-discount one.
	OriginalPrice *float64 `json:"original_price"`
	OnPromotion   bool     `gorm:"default:false" json:"on_promotion"`
	PromotionID   *uint    `json:"promotion_id"`

	Category string `gorm:"size:50" json:"category"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
