package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *BookingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

// --------------------------------------------------
// Service / Employee / Promotion
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = true", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetEmployee(
	ctx context.Context,
	businessID uint,
	employeeID uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = true", employeeID, businessID).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *BookingGormRepository) GetPromotion(
	ctx context.Context,
	businessID uint,
	promotionID uint,
) (*models.Promotion, error) {

	var promo models.Promotion
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = true", promotionID, businessID).
		First(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment inserts inside a transaction that row-locks the
// employee's overlapping bookings first, so two clients reading the same
// free slot cannot both commit. A matching legacy time-slot row is
// flipped in the same transaction.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"employee_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.EmployeeID,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.TimeSlot{}).
			Where(
				"employee_id = ? AND date = ? AND label = ?",
				ap.EmployeeID, ap.Date, ap.TimeLabel,
			).
			Update("available", false).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentForUser(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// RescheduleAppointment saves new times under the same conflict lock as
// creation, excluding the appointment itself from the overlap check.
func (r *BookingGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"employee_id = ? AND id <> ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.EmployeeID,
				ap.ID,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Save(ap).Error
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Business").
		Preload("Employee").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	employeeID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND weekday = ?", employeeID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	employeeID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"employee_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			employeeID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) IsWithinWorkingHours(
	ctx context.Context,
	employeeID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	weekday := int(start.Weekday())

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND weekday = ?", employeeID, weekday).
		First(&wh).Error; err != nil {

		// No row just means the employee does not work that day.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return domain.WithinWorkingHours(&wh, start, end), nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
