package models

import "time"

type Appointment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReferenceCode string `gorm:"size:36;uniqueIndex" json:"reference_code"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BusinessID uint     `json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	EmployeeID uint     `json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date and TimeLabel are kept as submitted by the client ("2025-03-01",
	// "2:30 PM"); StartTime/EndTime are the normalized instants derived
	// from them in the business timezone.
	Date      string    `gorm:"size:10" json:"date"`
	TimeLabel string    `gorm:"size:20" json:"time_label"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	DurationMin int `json:"duration_min"`

	// Pricing is recomputed server-side at creation, never trusted from
	// the client.
	Price          float64 `json:"price"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`
	PromotionText  string  `gorm:"size:100" json:"promotion_text"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
