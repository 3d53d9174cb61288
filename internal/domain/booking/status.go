package booking

import (
	"strings"

	"github.com/salonova-app/booking-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// NormalizeStatus maps the loosely-cased tokens older backends stored
// ("Booked", "NOT_BOOKED", "waiting") to the canonical set. Unrecognized
// input degrades to pending rather than failing a whole listing.
func NormalizeStatus(raw string) Status {
	token := strings.ToLower(raw)
	token = strings.ReplaceAll(token, " ", "")
	token = strings.ReplaceAll(token, "_", "")
	token = strings.ReplaceAll(token, "-", "")

	switch token {
	case "booked", "confirmed":
		return StatusConfirmed
	case "waiting", "pending":
		return StatusPending
	case "notbooked", "canceled", "cancelled":
		return StatusCancelled
	case "completed", "done":
		return StatusCompleted
	default:
		return StatusPending
	}
}

// ===============================
// Transition guards
// ===============================

// Transitions are monotonic: pending -> confirmed -> completed, with
// cancel allowed while the appointment is still open.

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReschedule(current Status) error {
	return CanCancel(current)
}

func InitialStatus() Status {
	return StatusPending
}
