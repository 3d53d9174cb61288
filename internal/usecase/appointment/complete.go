package appointment

import (
	"context"

	"github.com/salonova-app/booking-api/internal/audit"
	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit AuditSink,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	business, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(business.Timezone)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		UserID:     &userID,
		Action:     "appointment_completed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
