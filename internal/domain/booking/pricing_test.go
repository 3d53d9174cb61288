package booking

import (
	"testing"

	"github.com/salonova-app/booking-api/internal/models"
)

func TestQuoteServicePromotion(t *testing.T) {
	original := 150000.0
	svc := &models.Service{
		BusinessID:    1,
		Price:         100000,
		OriginalPrice: &original,
		OnPromotion:   true,
	}

	q := Quote(svc, nil)

	if q.OriginalPrice != 150000 {
		t.Errorf("OriginalPrice = %v, want 150000", q.OriginalPrice)
	}
	if q.DiscountAmount != 50000 {
		t.Errorf("DiscountAmount = %v, want 50000", q.DiscountAmount)
	}
	if q.DiscountPercent != 33 {
		t.Errorf("DiscountPercent = %v, want 33", q.DiscountPercent)
	}
	if q.FinalPrice != 100000 {
		t.Errorf("FinalPrice = %v, want 100000", q.FinalPrice)
	}
}

func TestQuoteServicePromotionBeatsExternal(t *testing.T) {
	original := 150000.0
	svc := &models.Service{
		BusinessID:    1,
		Price:         100000,
		OriginalPrice: &original,
		OnPromotion:   true,
	}
	promo := &models.Promotion{BusinessID: 1, Title: "Grand opening", Discount: "50%"}

	q := Quote(svc, promo)

	if q.DiscountPercent != 33 || q.FinalPrice != 100000 {
		t.Errorf("service promotion should win: got percent=%d final=%v", q.DiscountPercent, q.FinalPrice)
	}
	if q.PromotionText != "" {
		t.Errorf("PromotionText = %q, want empty", q.PromotionText)
	}
}

func TestQuotePercentPromotion(t *testing.T) {
	svc := &models.Service{BusinessID: 2, Price: 80000}
	promo := &models.Promotion{BusinessID: 2, Title: "Weekday deal", Discount: "20%"}

	q := Quote(svc, promo)

	if q.DiscountPercent != 20 {
		t.Errorf("DiscountPercent = %d, want 20", q.DiscountPercent)
	}
	if q.DiscountAmount != 16000 {
		t.Errorf("DiscountAmount = %v, want 16000", q.DiscountAmount)
	}
	if q.FinalPrice != 64000 {
		t.Errorf("FinalPrice = %v, want 64000", q.FinalPrice)
	}
	if q.PromotionText != "Weekday deal" {
		t.Errorf("PromotionText = %q, want %q", q.PromotionText, "Weekday deal")
	}
}

func TestQuoteFreeService(t *testing.T) {
	svc := &models.Service{BusinessID: 2, Price: 80000}
	promo := &models.Promotion{BusinessID: 2, Title: "First visit gift", Discount: "Free Service"}

	q := Quote(svc, promo)

	if q.FinalPrice != 80000 || q.DiscountAmount != 0 {
		t.Errorf("free service marker must not change price: final=%v amount=%v", q.FinalPrice, q.DiscountAmount)
	}
	if q.PromotionText != "First visit gift" {
		t.Errorf("PromotionText = %q, want %q", q.PromotionText, "First visit gift")
	}
}

func TestQuoteIgnoresOtherBusinessPromotion(t *testing.T) {
	svc := &models.Service{BusinessID: 2, Price: 80000}
	promo := &models.Promotion{BusinessID: 9, Title: "Elsewhere", Discount: "20%"}

	q := Quote(svc, promo)

	if q.FinalPrice != 80000 || q.DiscountPercent != 0 || q.PromotionText != "" {
		t.Errorf("promotion for another business applied: %+v", q)
	}
}

func TestQuoteBadDiscountLabels(t *testing.T) {
	svc := &models.Service{BusinessID: 2, Price: 80000}

	for _, discount := range []string{"", "abc", "-5%", "150%", "%"} {
		promo := &models.Promotion{BusinessID: 2, Discount: discount}
		q := Quote(svc, promo)
		if q.FinalPrice != 80000 || q.DiscountAmount != 0 {
			t.Errorf("Discount %q changed price: %+v", discount, q)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"20%", 20},
		{" 20% ", 20},
		{"20 %", 20},
		{"100%", 100},
		{"0%", 0},
		{"101%", 0},
		{"-1%", 0},
		{"x%", 0},
	}

	for _, tt := range tests {
		if got := parsePercent(tt.in); got != tt.want {
			t.Errorf("parsePercent(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
