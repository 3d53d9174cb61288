package appointment

import (
	"context"
	"time"

	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/dto"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

type ListForUser struct {
	repo domain.Repository
}

func NewListForUser(repo domain.Repository) *ListForUser {
	return &ListForUser{repo: repo}
}

// Execute returns the user's appointments split into upcoming and past.
// The split is recomputed per call against the current time, it is never
// persisted.
func (uc *ListForUser) Execute(
	ctx context.Context,
	userID uint,
) (*dto.PartitionedAppointmentsDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Each appointment partitions against its own business's clock.
	locOf := func(ap models.Appointment) *time.Location {
		return timezone.Location(ap.Business.Timezone)
	}
	now := timezone.Now()

	upcoming, past := domain.Partition(appointments, now, locOf)

	return &dto.PartitionedAppointmentsDTO{
		Upcoming: toListDTOs(upcoming),
		Past:     toListDTOs(past),
	}, nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		tod, _ := domain.ParseTimeLabel(ap.TimeLabel)

		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			ReferenceCode: ap.ReferenceCode,
			Date:          ap.Date,
			TimeLabel:     ap.TimeLabel,
			DisplayTime:   domain.FormatTimeForDisplay(tod),
			StartTime:     ap.StartTime,
			DurationMin:   ap.DurationMin,
			Status:        string(domain.NormalizeStatus(ap.Status)),
			BusinessName:  ap.Business.Name,
			EmployeeName:  ap.Employee.Name,
			ServiceName:   ap.Service.Name,
			FinalPrice:    ap.FinalPrice,
			PromotionText: ap.PromotionText,
		})
	}
	return out
}
