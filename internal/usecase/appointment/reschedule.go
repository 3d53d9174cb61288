package appointment

import (
	"context"
	"time"

	"github.com/salonova-app/booking-api/internal/audit"
	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

type RescheduleAppointmentInput struct {
	UserID        uint
	AppointmentID uint
	Date          string
	Time          string
}

// RescheduleAppointment moves an open appointment to a new slot. Pricing
// is kept, times are re-validated against working hours and conflicts.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit AuditSink
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit AuditSink,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.NormalizeStatus(ap.Status)); err != nil {
		return nil, err
	}

	business, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(business.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	tod, ok := domain.ParseTimeLabel(in.Time)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour, tod.Minute, 0, 0,
		loc,
	)

	minAdvance := business.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 60
	}

	now := timezone.NowIn(business.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	end := start.Add(time.Duration(ap.DurationMin) * time.Minute)

	withinHours, err := uc.repo.IsWithinWorkingHours(ctx, ap.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}
	if !withinHours {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	ap.Date = in.Date
	ap.TimeLabel = in.Time
	ap.StartTime = start
	ap.EndTime = end
	ap.Status = string(domain.StatusPending)

	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		UserID:     &in.UserID,
		Action:     "appointment_rescheduled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
