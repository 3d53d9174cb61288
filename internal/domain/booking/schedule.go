package booking

import (
	"sort"
	"time"

	"github.com/salonova-app/booking-api/internal/models"
)

// Partition splits appointments into upcoming and past relative to now,
// using the timestamp composed from the stored date and time label. The
// location is resolved per appointment through locOf, so bookings at
// businesses in different timezones each partition against their own
// local clock. Both halves come back sorted ascending. The input slice
// is not touched, so re-running on the same data yields the same result.
func Partition(
	appointments []models.Appointment,
	now time.Time,
	locOf func(models.Appointment) *time.Location,
) (upcoming []models.Appointment, past []models.Appointment) {

	upcoming = make([]models.Appointment, 0, len(appointments))
	past = make([]models.Appointment, 0)

	composed := func(ap models.Appointment) time.Time {
		return ComposeTimestamp(ap.Date, ap.TimeLabel, locOf(ap))
	}

	for _, ap := range appointments {
		if !composed(ap).Before(now) {
			upcoming = append(upcoming, ap)
		} else {
			past = append(past, ap)
		}
	}

	byComposedTime := func(list []models.Appointment) func(i, j int) bool {
		return func(i, j int) bool {
			return composed(list[i]).Before(composed(list[j]))
		}
	}

	sort.SliceStable(upcoming, byComposedTime(upcoming))
	sort.SliceStable(past, byComposedTime(past))

	return upcoming, past
}
