package appointment

import (
	"context"
	"testing"

	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
)

func seedAppointment(repo *fakeRepo, status string) *models.Appointment {
	ap := &models.Appointment{
		ID:         1,
		UserID:     7,
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       futureDate(),
		TimeLabel:  "2:30 PM",
		Status:     status,
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func TestConfirmAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "pending")
	sink := &fakeSink{}

	uc := NewConfirmAppointment(repo, sink)
	ap, err := uc.Execute(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.Status != "confirmed" {
		t.Errorf("Status = %q, want confirmed", ap.Status)
	}
	if repo.updated == nil || repo.updated.Status != "confirmed" {
		t.Error("updated appointment not persisted")
	}
	if len(sink.events) != 1 || sink.events[0].Action != "appointment_confirmed" {
		t.Errorf("audit = %+v", sink.events)
	}
}

func TestConfirmRejectsNonPending(t *testing.T) {
	for _, status := range []string{"confirmed", "completed", "cancelled"} {
		repo := newFakeRepo()
		seedAppointment(repo, status)

		uc := NewConfirmAppointment(repo, &fakeSink{})
		_, err := uc.Execute(context.Background(), 7, 1)

		if httperr.BusinessCode(err) != "invalid_state" {
			t.Errorf("confirm from %q: err = %v, want invalid_state", status, err)
		}
	}
}

func TestCancelAppointment(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "Booked"} {
		repo := newFakeRepo()
		seedAppointment(repo, status)
		sink := &fakeSink{}

		uc := NewCancelAppointment(repo, sink)
		ap, err := uc.Execute(context.Background(), 7, 1)
		if err != nil {
			t.Fatalf("cancel from %q: %v", status, err)
		}

		if ap.Status != "cancelled" {
			t.Errorf("Status = %q, want cancelled", ap.Status)
		}
		if ap.CancelledAt == nil {
			t.Error("CancelledAt not set")
		}
	}
}

func TestCancelRejectsClosed(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		repo := newFakeRepo()
		seedAppointment(repo, status)

		uc := NewCancelAppointment(repo, &fakeSink{})
		_, err := uc.Execute(context.Background(), 7, 1)

		if httperr.BusinessCode(err) != "invalid_state" {
			t.Errorf("cancel from %q: err = %v, want invalid_state", status, err)
		}
	}
}

func TestCompleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "confirmed")
	sink := &fakeSink{}

	uc := NewCompleteAppointment(repo, sink)
	ap, err := uc.Execute(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.Status != "completed" {
		t.Errorf("Status = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
}

func TestTransitionsWrongUser(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "pending")

	uc := NewCancelAppointment(repo, &fakeSink{})
	_, err := uc.Execute(context.Background(), 999, 1)

	if httperr.BusinessCode(err) != "appointment_not_found" {
		t.Errorf("err = %v, want appointment_not_found", err)
	}
}

func TestRescheduleAppointment(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "confirmed")
	ap.DurationMin = 30
	sink := &fakeSink{}

	uc := NewRescheduleAppointment(repo, sink)
	got, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        7,
		AppointmentID: 1,
		Date:          futureDate(),
		Time:          "4:00 PM",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got.TimeLabel != "4:00 PM" {
		t.Errorf("TimeLabel = %q", got.TimeLabel)
	}
	if got.Status != "pending" {
		t.Errorf("Status = %q, want pending after reschedule", got.Status)
	}
	if got.StartTime.Hour() != 16 {
		t.Errorf("StartTime = %v, want 16:00", got.StartTime)
	}
	if len(sink.events) != 1 || sink.events[0].Action != "appointment_rescheduled" {
		t.Errorf("audit = %+v", sink.events)
	}
}

func TestRescheduleRejectsClosed(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		repo := newFakeRepo()
		seedAppointment(repo, status)

		uc := NewRescheduleAppointment(repo, &fakeSink{})
		_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			UserID:        7,
			AppointmentID: 1,
			Date:          futureDate(),
			Time:          "4:00 PM",
		})

		if httperr.BusinessCode(err) != "invalid_state" {
			t.Errorf("reschedule from %q: err = %v, want invalid_state", status, err)
		}
	}
}

func TestRescheduleConflict(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "pending")
	ap.DurationMin = 30
	repo.createErr = httperr.ErrBusiness("time_conflict")

	uc := NewRescheduleAppointment(repo, &fakeSink{})
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        7,
		AppointmentID: 1,
		Date:          futureDate(),
		Time:          "4:00 PM",
	})

	if httperr.BusinessCode(err) != "time_conflict" {
		t.Errorf("err = %v, want time_conflict", err)
	}
}
