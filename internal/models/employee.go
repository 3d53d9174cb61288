package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint     `json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Title    string `gorm:"size:100" json:"title"`
	PhotoURL string `gorm:"size:500" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
