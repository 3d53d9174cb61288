package models

import "time"

type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	NameVi string `gorm:"size:100" json:"name_vi"`
	Icon   string `gorm:"size:50" json:"icon"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
