package appointment

import (
	"context"

	"github.com/salonova-app/booking-api/internal/audit"
	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit AuditSink
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit AuditSink,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		UserID:     &userID,
		Action:     "appointment_confirmed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
