package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	// Preferences the mobile client persists between sessions.
	Locale   string `gorm:"size:5;default:'en'" json:"locale"`
	CityID   *uint  `json:"city_id"`
	DarkMode bool   `gorm:"default:false" json:"dark_mode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
