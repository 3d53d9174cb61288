package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Date          string    `json:"date"`
	TimeLabel     string    `json:"time_label"`
	DisplayTime   string    `json:"display_time"`
	StartTime     time.Time `json:"start_time"`
	DurationMin   int       `json:"duration_min"`
	Status        string    `json:"status"`
	BusinessName  string    `json:"business_name"`
	EmployeeName  string    `json:"employee_name"`
	ServiceName   string    `json:"service_name"`
	FinalPrice    float64   `json:"final_price"`
	PromotionText string    `json:"promotion_text,omitempty"`
}

// PartitionedAppointmentsDTO is what the appointments screen renders:
// two tabs, both sorted ascending.
type PartitionedAppointmentsDTO struct {
	Upcoming []AppointmentListDTO `json:"upcoming"`
	Past     []AppointmentListDTO `json:"past"`
}
