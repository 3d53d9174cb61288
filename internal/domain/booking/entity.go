package booking

import (
	"time"

	"github.com/salonova-app/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(NormalizeStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(NormalizeStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(NormalizeStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
