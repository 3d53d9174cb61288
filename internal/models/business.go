package models

import "time"

type Business struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	CityID uint `json:"city_id"`
	City   City `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"city"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Phone       string `gorm:"size:20" json:"phone"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:1000" json:"description"`
	PhotoURL    string `gorm:"size:500" json:"photo_url"`

	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	Recommended bool `gorm:"default:false" json:"recommended"`

	Timezone          string `gorm:"size:50" json:"timezone"`
	MinAdvanceMinutes int    `gorm:"default:60" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
