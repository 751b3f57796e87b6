package enum

// DiscountType represents how a promotion discounts a base price
type DiscountType string

const (
	// DiscountPercentage discounts by a percentage of the base price
	DiscountPercentage DiscountType = "PORCENTAJE"
	// DiscountFixed discounts by a fixed amount
	DiscountFixed DiscountType = "FIJO"
)

// String returns the string representation of the discount type
func (d DiscountType) String() string {
	return string(d)
}
