package entity

import (
	"encoding/json"
	"time"
)

// Payment is the immutable payment row for an invoice. There is exactly one
// per invoice and no reversal operation.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id_pago"`
	InvoiceID uint      `gorm:"column:id_factura;not null;uniqueIndex" json:"id_factura"`
	Date      time.Time `gorm:"column:fecha_pago;type:date;not null" json:"fecha_pago"`
	Method    string    `gorm:"column:tipo_pago;size:15;not null" json:"tipo_pago"`
	Amount    int64     `gorm:"column:monto;not null" json:"-"` // cents
	CreatedAt time.Time `json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"monto"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "pagos"
}
