package service

import (
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
)

// EffectiveUnitPrice computes the discounted unit price in cents for a base
// price and an optional promotion. The result is clamped at zero: a fixed
// discount larger than the price never produces a negative amount. Callers
// are expected to pass only active promotions, but the clamp holds either
// way. Pure function, no I/O.
func EffectiveUnitPrice(basePrice int64, promo *entity.Promotion) int64 {
	if promo == nil {
		return basePrice
	}

	var discounted int64
	switch promo.DiscountType {
	case enum.DiscountPercentage:
		discounted = basePrice - (basePrice*promo.Value)/100
	case enum.DiscountFixed:
		discounted = basePrice - promo.Value
	default:
		discounted = basePrice
	}

	if discounted < 0 {
		return 0
	}
	return discounted
}

// PromotionActiveAt reports whether the promotion applies at the given
// instant: flagged active and now within [StartDate, EndDate].
func PromotionActiveAt(promo *entity.Promotion, now time.Time) bool {
	if promo == nil || !promo.Active {
		return false
	}
	if now.Before(promo.StartDate) {
		return false
	}
	// EndDate is a date; the promotion runs through the end of that day.
	return now.Before(promo.EndDate.AddDate(0, 0, 1))
}

// ActivePromotion returns the first promotion active at the given instant,
// or nil when none applies.
func ActivePromotion(promos []entity.Promotion, now time.Time) *entity.Promotion {
	for i := range promos {
		if PromotionActiveAt(&promos[i], now) {
			return &promos[i]
		}
	}
	return nil
}
