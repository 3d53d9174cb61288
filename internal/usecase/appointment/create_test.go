package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/salonova-app/booking-api/internal/audit"
	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

// ======================================================
// FAKES
// ======================================================

type fakeSink struct {
	events []audit.Event
}

func (s *fakeSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

type fakeRepo struct {
	business     *models.Business
	service      *models.Service
	employee     *models.Employee
	promotion    *models.Promotion
	appointments map[uint]*models.Appointment

	withinHours     bool
	withinHoursErr  error
	createErr       error
	workingHours    *models.WorkingHours
	dayAppointments []models.Appointment

	created *models.Appointment
	updated *models.Appointment
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		business: &models.Business{
			ID:       1,
			Name:     "Mây Spa",
			Timezone: timezone.DefaultTimezone,
		},
		service: &models.Service{
			ID:          10,
			BusinessID:  1,
			Name:        "Haircut",
			DurationMin: 30,
			Price:       80000,
		},
		employee: &models.Employee{
			ID:         20,
			BusinessID: 1,
			Name:       "Linh",
		},
		appointments: map[uint]*models.Appointment{},
		withinHours:  true,
	}
}

func (r *fakeRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if r.business == nil || r.business.ID != id {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return r.business, nil
}

func (r *fakeRepo) GetService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	if r.service == nil || r.service.ID != serviceID || r.service.BusinessID != businessID {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return r.service, nil
}

func (r *fakeRepo) GetEmployee(_ context.Context, businessID, employeeID uint) (*models.Employee, error) {
	if r.employee == nil || r.employee.ID != employeeID || r.employee.BusinessID != businessID {
		return nil, httperr.ErrBusiness("employee_not_found")
	}
	return r.employee, nil
}

func (r *fakeRepo) GetPromotion(_ context.Context, businessID, promotionID uint) (*models.Promotion, error) {
	if r.promotion == nil || r.promotion.ID != promotionID {
		return nil, httperr.ErrBusiness("promotion_not_found")
	}
	return r.promotion, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = uint(len(r.appointments) + 1)
	r.appointments[ap.ID] = ap
	r.created = ap
	return nil
}

func (r *fakeRepo) GetAppointmentForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.UserID != userID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	r.updated = ap
	return nil
}

func (r *fakeRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.appointments[ap.ID] = ap
	r.updated = ap
	return nil
}

func (r *fakeRepo) ListAppointmentsForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, _ uint, _ int) (*models.WorkingHours, error) {
	return r.workingHours, nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return r.dayAppointments, nil
}

func (r *fakeRepo) IsWithinWorkingHours(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
	if r.withinHoursErr != nil {
		return false, r.withinHoursErr
	}
	return r.withinHours, nil
}

// ======================================================
// HELPERS
// ======================================================

func futureDate() string {
	return timezone.Now().AddDate(0, 0, 2).Format("2006-01-02")
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:     7,
		BusinessID: 1,
		EmployeeID: 20,
		ServiceID:  10,
		Date:       futureDate(),
		Time:       "2:30 PM",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	sink := &fakeSink{}
	uc := NewCreateAppointment(repo, sink)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.Status != "pending" {
		t.Errorf("Status = %q, want pending", ap.Status)
	}
	if ap.ReferenceCode == "" {
		t.Error("ReferenceCode not set")
	}
	if ap.Price != 80000 || ap.FinalPrice != 80000 {
		t.Errorf("pricing = %v/%v, want 80000/80000", ap.Price, ap.FinalPrice)
	}
	if ap.DurationMin != 30 {
		t.Errorf("DurationMin = %d, want 30", ap.DurationMin)
	}
	if got := ap.EndTime.Sub(ap.StartTime); got != 30*time.Minute {
		t.Errorf("duration = %v, want 30m", got)
	}
	if ap.StartTime.Hour() != 14 || ap.StartTime.Minute() != 30 {
		t.Errorf("StartTime = %v, want 14:30", ap.StartTime)
	}

	if len(sink.events) != 1 || sink.events[0].Action != "appointment_created" {
		t.Errorf("audit events = %+v, want one appointment_created", sink.events)
	}
}

func TestCreateAppointmentRecomputesDiscount(t *testing.T) {
	repo := newFakeRepo()
	repo.promotion = &models.Promotion{ID: 5, BusinessID: 1, Title: "Weekday deal", Discount: "20%"}
	uc := NewCreateAppointment(repo, &fakeSink{})

	in := validInput()
	promoID := uint(5)
	in.PromotionID = &promoID

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.DiscountAmount != 16000 || ap.FinalPrice != 64000 {
		t.Errorf("discount = %v, final = %v, want 16000/64000", ap.DiscountAmount, ap.FinalPrice)
	}
	if ap.PromotionText != "Weekday deal" {
		t.Errorf("PromotionText = %q", ap.PromotionText)
	}
}

func TestCreateAppointmentWorkingHoursLookupFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.withinHoursErr = errors.New("connection reset")
	sink := &fakeSink{}

	uc := NewCreateAppointment(repo, sink)
	_, err := uc.Execute(context.Background(), validInput())

	// A storage failure must surface as such, not as a closed day.
	if err == nil {
		t.Fatal("expected error")
	}
	if code := httperr.BusinessCode(err); code != "" {
		t.Errorf("storage failure mapped to business code %q", code)
	}
	if len(sink.events) != 0 {
		t.Errorf("failed booking dispatched audit: %+v", sink.events)
	}
}

func TestCreateAppointmentRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*fakeRepo, *CreateAppointmentInput)
		wantCode string
	}{
		{
			"unknown business",
			func(_ *fakeRepo, in *CreateAppointmentInput) { in.BusinessID = 99 },
			"business_not_found",
		},
		{
			"bad date",
			func(_ *fakeRepo, in *CreateAppointmentInput) { in.Date = "03/15/2025" },
			"invalid_date_or_time",
		},
		{
			"unparseable time label",
			func(_ *fakeRepo, in *CreateAppointmentInput) { in.Time = "afternoon" },
			"invalid_date_or_time",
		},
		{
			"too soon",
			func(_ *fakeRepo, in *CreateAppointmentInput) {
				in.Date = timezone.Now().Format("2006-01-02")
				in.Time = timezone.Now().Format("15:04")
			},
			"too_soon",
		},
		{
			"unknown service",
			func(_ *fakeRepo, in *CreateAppointmentInput) { in.ServiceID = 99 },
			"service_not_found",
		},
		{
			"unknown employee",
			func(_ *fakeRepo, in *CreateAppointmentInput) { in.EmployeeID = 99 },
			"employee_not_found",
		},
		{
			"outside working hours",
			func(r *fakeRepo, _ *CreateAppointmentInput) { r.withinHours = false },
			"outside_working_hours",
		},
		{
			"slot conflict",
			func(r *fakeRepo, _ *CreateAppointmentInput) {
				r.createErr = httperr.ErrBusiness("time_conflict")
			},
			"time_conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			sink := &fakeSink{}
			in := validInput()
			tt.mutate(repo, &in)

			uc := NewCreateAppointment(repo, sink)
			_, err := uc.Execute(context.Background(), in)

			if got := httperr.BusinessCode(err); got != tt.wantCode {
				t.Errorf("code = %q (err %v), want %q", got, err, tt.wantCode)
			}
			if len(sink.events) != 0 {
				t.Errorf("rejected booking still dispatched audit: %+v", sink.events)
			}
		})
	}
}
