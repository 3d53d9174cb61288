package appointment

import (
	"context"

	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/models"
)

type QuoteInput struct {
	BusinessID  uint
	ServiceID   uint
	PromotionID *uint
}

// GetQuote prices a booking before it is placed, so the screen can show
// the same numbers the server will store at creation.
type GetQuote struct {
	repo domain.Repository
}

func NewGetQuote(repo domain.Repository) *GetQuote {
	return &GetQuote{repo: repo}
}

func (uc *GetQuote) Execute(
	ctx context.Context,
	in QuoteInput,
) (*domain.PriceQuote, error) {

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	var promo *models.Promotion
	if in.PromotionID != nil {
		promo, err = uc.repo.GetPromotion(ctx, in.BusinessID, *in.PromotionID)
		if err != nil {
			return nil, httperr.ErrBusiness("promotion_not_found")
		}
	}

	quote := domain.Quote(svc, promo)
	return &quote, nil
}
