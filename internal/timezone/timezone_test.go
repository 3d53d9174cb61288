package timezone

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"Asia/Ho_Chi_Minh", true},
		{"America/Sao_Paulo", true},
		{"UTC", true},
		{"", false},
		{"Mars/Olympus", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.tz); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

func TestLocationFallsBack(t *testing.T) {
	if got := Location("Mars/Olympus"); got.String() != DefaultTimezone {
		t.Errorf("Location fallback = %q, want %q", got.String(), DefaultTimezone)
	}
	if got := Location("UTC"); got.String() != "UTC" {
		t.Errorf("Location(UTC) = %q", got.String())
	}
}
