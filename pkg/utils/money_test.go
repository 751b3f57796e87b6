package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	assert.Equal(t, int64(1500), Cents(15.00))
	assert.Equal(t, int64(1), Cents(0.01))
	assert.Equal(t, int64(0), Cents(0))

	// Rounding, not truncation
	assert.Equal(t, int64(1999), Cents(19.99))
	assert.Equal(t, int64(1010), Cents(10.099999))
	assert.Equal(t, int64(504), Cents(5.04))
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, 15.0, Decimal(1500))
	assert.Equal(t, 0.01, Decimal(1))
	assert.Equal(t, 50.40, Decimal(5040))
}

func TestCentsRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 0.01, 1.23, 45.00, 50.40, 999.99} {
		assert.Equal(t, amount, Decimal(Cents(amount)))
	}
}
