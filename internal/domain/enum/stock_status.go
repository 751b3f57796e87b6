package enum

// StockStatus classifies a branch inventory row against its minimum stock
type StockStatus string

const (
	StockOut       StockStatus = "Agotado"
	StockLow       StockStatus = "Bajo Stock"
	StockAvailable StockStatus = "Disponible"
)

// StockStatusFor classifies the current stock level against the minimum
func StockStatusFor(current, minimum int) StockStatus {
	switch {
	case current <= 0:
		return StockOut
	case current <= minimum:
		return StockLow
	default:
		return StockAvailable
	}
}
