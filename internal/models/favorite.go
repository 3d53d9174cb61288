package models

import "time"

type Favorite struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID     uint `gorm:"uniqueIndex:idx_user_business" json:"user_id"`
	BusinessID uint `gorm:"uniqueIndex:idx_user_business" json:"business_id"`

	Business Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business"`

	CreatedAt time.Time `json:"created_at"`
}
