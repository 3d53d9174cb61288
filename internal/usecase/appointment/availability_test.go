package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
)

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	repo.workingHours = &models.WorkingHours{
		Active:     true,
		StartTime:  "09:00",
		EndTime:    "12:00",
		BreakStart: "10:00",
		BreakEnd:   "10:30",
	}

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       "2025-03-10",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 30-minute service, 09:00-12:00 day, 10:00-10:30 break.
	want := []domain.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:30", End: "10:00"},
		{Start: "10:30", End: "11:00"},
		{Start: "11:00", End: "11:30"},
		{Start: "11:30", End: "12:00"},
	}

	if len(slots) != len(want) {
		t.Fatalf("slots = %+v, want %+v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slots[%d] = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestGetAvailabilityExcludesBooked(t *testing.T) {
	repo := newFakeRepo()
	repo.workingHours = &models.WorkingHours{
		Active:    true,
		StartTime: "09:00",
		EndTime:   "11:00",
	}

	// Same instants as 09:30-10:00 Ho Chi Minh local time.
	loc := time.FixedZone("ICT", 7*3600)
	repo.dayAppointments = []models.Appointment{
		{
			StartTime: time.Date(2025, 3, 10, 9, 30, 0, 0, loc),
			EndTime:   time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
		},
	}

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       "2025-03-10",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := []domain.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "10:00", End: "10:30"},
		{Start: "10:30", End: "11:00"},
	}

	if len(slots) != len(want) {
		t.Fatalf("slots = %+v, want %+v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slots[%d] = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestGetAvailabilityDayOff(t *testing.T) {
	repo := newFakeRepo()

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       "2025-03-10",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(slots) != 0 {
		t.Errorf("expected no slots without working hours, got %+v", slots)
	}
}

func TestGetAvailabilityBadInput(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       "03/10/2025",
	})
	if httperr.BusinessCode(err) != "invalid_date_or_time" {
		t.Errorf("bad date: err = %v, want invalid_date_or_time", err)
	}

	_, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 99,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       "2025-03-10",
	})
	if httperr.BusinessCode(err) != "business_not_found" {
		t.Errorf("unknown business: err = %v, want business_not_found", err)
	}
}

func TestGetAvailabilityUsesBusinessTimezone(t *testing.T) {
	repo := newFakeRepo()
	repo.business.Timezone = "America/Sao_Paulo"
	repo.workingHours = &models.WorkingHours{
		Active:    true,
		StartTime: "09:00",
		EndTime:   "10:00",
	}

	// Booked 09:00-09:30 Sao Paulo local time; in the default timezone
	// these instants fall on a different wall clock entirely.
	sp := time.FixedZone("BRT", -3*3600)
	repo.dayAppointments = []models.Appointment{
		{
			StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, sp),
			EndTime:   time.Date(2025, 3, 10, 9, 30, 0, 0, sp),
		},
	}

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       "2025-03-10",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := []domain.TimeSlot{{Start: "09:30", End: "10:00"}}
	if len(slots) != 1 || slots[0] != want[0] {
		t.Errorf("slots = %+v, want %+v", slots, want)
	}
}

func TestGetQuote(t *testing.T) {
	repo := newFakeRepo()
	repo.promotion = &models.Promotion{ID: 5, BusinessID: 1, Title: "Weekday deal", Discount: "20%"}

	uc := NewGetQuote(repo)

	promoID := uint(5)
	q, err := uc.Execute(context.Background(), QuoteInput{
		BusinessID:  1,
		ServiceID:   10,
		PromotionID: &promoID,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if q.FinalPrice != 64000 || q.DiscountPercent != 20 {
		t.Errorf("quote = %+v, want 20%% off 80000", q)
	}
}
