package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
)

func TestEffectiveUnitPrice(t *testing.T) {
	tests := []struct {
		name  string
		base  int64
		promo *entity.Promotion
		want  int64
	}{
		{"no promotion", 1500, nil, 1500},
		{
			"percentage discount",
			2000,
			&entity.Promotion{DiscountType: enum.DiscountPercentage, Value: 25},
			1500,
		},
		{
			"fixed discount",
			2000,
			&entity.Promotion{DiscountType: enum.DiscountFixed, Value: 500},
			1500,
		},
		{
			"fixed discount larger than price clamps at zero",
			300,
			&entity.Promotion{DiscountType: enum.DiscountFixed, Value: 500},
			0,
		},
		{
			"hundred percent",
			2000,
			&entity.Promotion{DiscountType: enum.DiscountPercentage, Value: 100},
			0,
		},
		{
			"unknown discount type leaves the price alone",
			2000,
			&entity.Promotion{DiscountType: "REGALO", Value: 500},
			2000,
		},
		{
			"percentage truncates toward the customer",
			999,
			&entity.Promotion{DiscountType: enum.DiscountPercentage, Value: 10},
			900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveUnitPrice(tt.base, tt.promo))
		})
	}
}

func TestPromotionActiveAt(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	promo := &entity.Promotion{
		Active:    true,
		StartDate: day("2026-03-01"),
		EndDate:   day("2026-03-31"),
	}

	assert.False(t, PromotionActiveAt(nil, day("2026-03-15")))
	assert.False(t, PromotionActiveAt(promo, day("2026-02-28")))
	assert.True(t, PromotionActiveAt(promo, day("2026-03-01")))
	assert.True(t, PromotionActiveAt(promo, day("2026-03-15")))

	// EndDate is inclusive through the end of that day
	assert.True(t, PromotionActiveAt(promo, day("2026-03-31").Add(23*time.Hour)))
	assert.False(t, PromotionActiveAt(promo, day("2026-04-01")))

	inactive := &entity.Promotion{
		Active:    false,
		StartDate: day("2026-03-01"),
		EndDate:   day("2026-03-31"),
	}
	assert.False(t, PromotionActiveAt(inactive, day("2026-03-15")))
}

func TestActivePromotion(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	now := day("2026-03-15")

	promos := []entity.Promotion{
		{Name: "expirada", Active: true, StartDate: day("2026-01-01"), EndDate: day("2026-01-31")},
		{Name: "vigente", Active: true, StartDate: day("2026-03-01"), EndDate: day("2026-03-31")},
		{Name: "tambien vigente", Active: true, StartDate: day("2026-03-10"), EndDate: day("2026-03-20")},
	}

	got := ActivePromotion(promos, now)
	if assert.NotNil(t, got) {
		assert.Equal(t, "vigente", got.Name)
	}

	assert.Nil(t, ActivePromotion(nil, now))
	assert.Nil(t, ActivePromotion(promos[:1], now))
}
