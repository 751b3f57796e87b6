package entity

import (
	"encoding/json"
	"time"
)

// Invoice is the billing document, bound one-to-one to a Sale. Monetary
// fields start at zero and are stamped during totals finalization.
type Invoice struct {
	ID         uint      `gorm:"primaryKey" json:"id_factura"`
	SaleID     uint      `gorm:"column:id_venta;not null;uniqueIndex" json:"id_venta"`
	CustomerID uint      `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	BranchID   uint      `gorm:"column:id_sucursal;not null;index" json:"id_sucursal"`
	Number     string    `gorm:"column:num_factura;size:40;uniqueIndex;not null" json:"num_factura"`
	IssueDate  time.Time `gorm:"column:fecha_emision;type:date;not null" json:"fecha_emision"`
	Subtotal   int64     `gorm:"column:subtotal;not null;default:0" json:"-"` // cents
	Tax        int64     `gorm:"column:iva;not null;default:0" json:"-"`
	Total      int64     `gorm:"column:total;not null;default:0" json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`

	// Relationships
	Sale     Sale          `gorm:"foreignKey:SaleID" json:"-"`
	Customer Customer      `gorm:"foreignKey:CustomerID" json:"cliente,omitempty"`
	Branch   Branch        `gorm:"foreignKey:BranchID" json:"-"`
	Lines    []InvoiceLine `gorm:"foreignKey:InvoiceID" json:"servicios,omitempty"`
	Payment  *Payment      `gorm:"foreignKey:InvoiceID" json:"pago,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"iva"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(i),
		Subtotal: float64(i.Subtotal) / 100,
		Tax:      float64(i.Tax) / 100,
		Total:    float64(i.Total) / 100,
	})
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "facturas"
}

// InvoiceLine is one service line of an invoice. When the service was sold
// from a booked appointment, SourceAppointmentID records which one.
type InvoiceLine struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	InvoiceID           uint      `gorm:"column:id_factura;not null;index" json:"id_factura"`
	ServiceID           uint      `gorm:"column:id_servicio;not null;index" json:"id_servicio"`
	Quantity            int       `gorm:"column:cantidad;not null;default:1" json:"cantidad"`
	UnitPrice           int64     `gorm:"column:precio_unitario;not null" json:"-"` // cents
	Discount            int64     `gorm:"column:descuento;not null;default:0" json:"-"`
	Subtotal            int64     `gorm:"column:subtotal;not null" json:"-"`
	SourceAppointmentID *uint     `gorm:"column:id_cita;index" json:"id_cita,omitempty"`
	CreatedAt           time.Time `json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l InvoiceLine) MarshalJSON() ([]byte, error) {
	type Alias InvoiceLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"precio_unitario"`
		Discount  float64 `json:"descuento"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Discount:  float64(l.Discount) / 100,
		Subtotal:  float64(l.Subtotal) / 100,
	})
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "servicio_factura"
}
