package booking

import (
	"time"

	"github.com/salonova-app/booking-api/internal/models"
)

// WithinWorkingHours reports whether [start, end) fits inside the
// employee's configured day, excluding the break window.
func WithinWorkingHours(
	wh *models.WorkingHours,
	start time.Time,
	end time.Time,
) bool {

	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return false
	}

	loc := start.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := parseHM(wh.StartTime)
	workEnd := parseHM(wh.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		breakStart := parseHM(wh.BreakStart)
		breakEnd := parseHM(wh.BreakEnd)

		if start.Before(breakEnd) && end.After(breakStart) {
			return false
		}
	}

	return true
}
