package appointment

import (
	"context"
	"time"

	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute generates the free slots for one employee/service/day: the
// working-hours window stepped by the service duration, minus the break
// and minus open appointments.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	// The requested day means the business's own calendar day.
	loc := timezone.Location(business.Timezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(day.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.EmployeeID, weekday)
	if err != nil || wh == nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(wh.StartTime)
	dayEnd := parseHM(wh.EndTime)

	hasBreak := wh.BreakStart != "" && wh.BreakEnd != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = parseHM(wh.BreakStart)
		breakEnd = parseHM(wh.BreakEnd)
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.EmployeeID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(svc.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if hasBreak && slotStart.Before(breakEnd) && slotEnd.After(breakStart) {
			continue
		}

		// skip appointments that ended before this slot
		for apIdx < len(appointments) && appointments[apIdx].EndTime.Before(slotStart) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if slotStart.Before(ap.EndTime) && slotEnd.After(ap.StartTime) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
