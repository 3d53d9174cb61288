package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Appointment times arrive as free-form labels ("2:30 PM", "14:30",
// "09:00 am") written by several client generations. Everything here
// normalizes them into something sortable.

var hhmmPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeLabel extracts hour/minute from a label, applying the 12-hour
// conversion when an AM/PM marker is present. The second return is false
// when no HH:MM pattern matched and midnight was defaulted, so callers
// can tell a real midnight from a fallback.
func ParseTimeLabel(label string) (TimeOfDay, bool) {
	m := hhmmPattern.FindStringSubmatch(label)
	if m == nil {
		return TimeOfDay{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	upper := strings.ToUpper(label)
	switch {
	case strings.Contains(upper, "PM"):
		if hour != 12 {
			hour += 12
		}
	case strings.Contains(upper, "AM"):
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// FormatTimeForDisplay renders a TimeOfDay as the 12-hour label the
// client shows, e.g. "2:30 PM".
func FormatTimeForDisplay(t TimeOfDay) string {
	meridiem := "AM"
	hour := t.Hour

	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, meridiem)
}

// ComposeTimestamp combines a "YYYY-MM-DD" date string with a time label
// into an instant in loc, for chronological ordering. Missing date parts
// default to month=1, day=1; an unparseable label defaults to midnight.
func ComposeTimestamp(date string, label string, loc *time.Location) time.Time {
	year, month, day := 0, 1, 1

	parts := strings.Split(date, "-")
	if len(parts) > 0 {
		year, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if len(parts) > 2 {
		if d, err := strconv.Atoi(parts[2]); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}

	tod, _ := ParseTimeLabel(label)

	return time.Date(year, time.Month(month), day, tod.Hour, tod.Minute, 0, 0, loc)
}
