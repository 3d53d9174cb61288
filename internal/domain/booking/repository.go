package booking

import (
	"context"
	"time"

	"github.com/salonova-app/booking-api/internal/models"
)

type AvailabilityInput struct {
	BusinessID uint
	EmployeeID uint
	ServiceID  uint
	Date       string // YYYY-MM-DD, interpreted in the business timezone
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// -------- Service / Employee / Promotion --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	GetEmployee(
		ctx context.Context,
		businessID uint,
		employeeID uint,
	) (*models.Employee, error)

	GetPromotion(
		ctx context.Context,
		businessID uint,
		promotionID uint,
	) (*models.Promotion, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		employeeID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListAppointmentsForDay(
		ctx context.Context,
		employeeID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	IsWithinWorkingHours(
		ctx context.Context,
		employeeID uint,
		start time.Time,
		end time.Time,
	) (bool, error)
}
