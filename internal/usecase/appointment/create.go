package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonova-app/booking-api/internal/audit"
	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID     uint
	BusinessID uint
	EmployeeID uint
	ServiceID  uint

	Date string // YYYY-MM-DD
	Time string // time label, "2:30 PM" or "14:30"

	PromotionID *uint
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCreateAppointment(
	repo domain.Repository,
	audit AuditSink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	loc := timezone.Location(business.Timezone)

	// Creation is strict: a label the parser had to default is rejected
	// instead of silently booking midnight.
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

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	employee, err := uc.repo.GetEmployee(ctx, in.BusinessID, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	withinHours, err := uc.repo.IsWithinWorkingHours(ctx, employee.ID, start, end)
	if err != nil {
		return nil, err
	}
	if !withinHours {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// Pricing is recomputed here from the stored records. Whatever the
	// client displayed is never written back.
	var promo *models.Promotion
	if in.PromotionID != nil {
		promo, err = uc.repo.GetPromotion(ctx, in.BusinessID, *in.PromotionID)
		if err != nil {
			return nil, httperr.ErrBusiness("promotion_not_found")
		}
	}
	quote := domain.Quote(svc, promo)

	ap := &models.Appointment{
		ReferenceCode: uuid.NewString(),
		UserID:        in.UserID,
		BusinessID:    in.BusinessID,
		EmployeeID:    employee.ID,
		ServiceID:     svc.ID,
		Date:          in.Date,
		TimeLabel:     in.Time,
		StartTime:     start,
		EndTime:       end,
		DurationMin:   svc.DurationMin,

		Price:          quote.OriginalPrice,
		DiscountAmount: quote.DiscountAmount,
		FinalPrice:     quote.FinalPrice,
		PromotionText:  quote.PromotionText,

		Status: string(domain.InitialStatus()),
		Notes:  in.Notes,
	}

	// The repository runs the row-locked overlap check in the same
	// transaction as the insert.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     &in.UserID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
