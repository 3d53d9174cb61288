package booking

import (
	"math"
	"strconv"
	"strings"

	"github.com/salonova-app/booking-api/internal/models"
)

const FreeServiceDiscount = "Free Service"

// PriceQuote is the pricing breakdown shown on the booking screen and
// stored on the appointment. It is always computed here, server-side.
type PriceQuote struct {
	OriginalPrice   float64 `json:"original_price"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	FinalPrice      float64 `json:"final_price"`
	PromotionText   string  `json:"promotion_text,omitempty"`
}

// Quote applies the two discount sources in order of precedence:
//
//  1. the service's own promotional pricing (original vs current price)
//  2. an externally supplied promotion record for the same business,
//     either a percentage or a "Free Service" marker
//
// A promotion for another business is ignored.
func Quote(svc *models.Service, promo *models.Promotion) PriceQuote {
	q := PriceQuote{
		OriginalPrice: svc.Price,
		FinalPrice:    svc.Price,
	}

	if svc.OnPromotion && svc.OriginalPrice != nil && *svc.OriginalPrice > svc.Price {
		original := *svc.OriginalPrice
		discount := original - svc.Price

		q.OriginalPrice = original
		q.DiscountAmount = discount
		q.DiscountPercent = int(math.Round(discount / original * 100))
		q.FinalPrice = svc.Price
		return q
	}

	if promo == nil || promo.BusinessID != svc.BusinessID {
		return q
	}

	if strings.EqualFold(strings.TrimSpace(promo.Discount), FreeServiceDiscount) {
		// Informational only, the price is not changed.
		q.PromotionText = promo.Title
		if q.PromotionText == "" {
			q.PromotionText = FreeServiceDiscount
		}
		return q
	}

	percent := parsePercent(promo.Discount)
	if percent <= 0 {
		return q
	}

	amount := math.Round(svc.Price * float64(percent) / 100)

	q.DiscountPercent = percent
	q.DiscountAmount = amount
	q.FinalPrice = svc.Price - amount
	q.PromotionText = promo.Title
	return q
}

func parsePercent(discount string) int {
	s := strings.TrimSpace(discount)
	s = strings.TrimSuffix(s, "%")

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return 0
	}
	return n
}
