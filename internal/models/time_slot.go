package models

import "time"

// TimeSlot is the legacy availability surface: a discrete bookable unit
// with a flag. Slots are flipped inside the booking transaction so the
// flag can no longer race with overlapping bookings.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint `json:"business_id"`
	EmployeeID uint `json:"employee_id"`

	Date      string `gorm:"size:10;index:idx_slot_lookup" json:"date"`
	Label     string `gorm:"size:20;index:idx_slot_lookup" json:"label"`
	Available bool   `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
