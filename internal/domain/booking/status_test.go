package booking

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"booked", StatusConfirmed},
		{"Booked", StatusConfirmed},
		{"confirmed", StatusConfirmed},
		{"waiting", StatusPending},
		{"pending", StatusPending},
		{"notbooked", StatusCancelled},
		{"NOT_BOOKED", StatusCancelled},
		{"not-booked", StatusCancelled},
		{"not booked", StatusCancelled},
		{"canceled", StatusCancelled},
		{"cancelled", StatusCancelled},
		{"completed", StatusCompleted},
		{"DONE", StatusCompleted},
		{"", StatusPending},
		{"garbage", StatusPending},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestTransitionGuards(t *testing.T) {
	tests := []struct {
		name    string
		guard   func(Status) error
		allowed []Status
	}{
		{"confirm", CanConfirm, []Status{StatusPending}},
		{"complete", CanComplete, []Status{StatusPending, StatusConfirmed}},
		{"cancel", CanCancel, []Status{StatusPending, StatusConfirmed}},
		{"reschedule", CanReschedule, []Status{StatusPending, StatusConfirmed}},
	}

	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for _, tt := range tests {
		allowed := map[Status]bool{}
		for _, s := range tt.allowed {
			allowed[s] = true
		}

		for _, s := range all {
			err := tt.guard(s)
			if allowed[s] && err != nil {
				t.Errorf("%s from %q: unexpected error %v", tt.name, s, err)
			}
			if !allowed[s] && err == nil {
				t.Errorf("%s from %q: expected error, got nil", tt.name, s)
			}
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Errorf("InitialStatus() = %q, want %q", got, StatusPending)
	}
}
