package entity

import (
	"encoding/json"
	"time"
)

// Sale is the retail-goods transaction header. Its total starts at zero and
// is stamped in the same settlement step that finalizes the invoice totals.
type Sale struct {
	ID        uint      `gorm:"primaryKey" json:"id_venta"`
	BranchID  uint      `gorm:"column:id_sucursal;not null;index" json:"id_sucursal"`
	CashierID uint      `gorm:"column:id_empleado;not null;index" json:"id_empleado"`
	SaleDate  time.Time `gorm:"column:fecha_venta;type:date;not null" json:"fecha_venta"`
	Total     int64     `gorm:"column:total;not null;default:0" json:"-"` // cents
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relationships
	Branch  Branch     `gorm:"foreignKey:BranchID" json:"-"`
	Cashier Employee   `gorm:"foreignKey:CashierID" json:"-"`
	Lines   []SaleLine `gorm:"foreignKey:SaleID" json:"detalles,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(s),
		Total: float64(s.Total) / 100,
	})
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "ventas"
}

// SaleLine is one retail product line of a sale. Amounts are stored exactly
// as submitted by the cashier terminal; the engine does not recompute them.
type SaleLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SaleID    uint      `gorm:"column:id_venta;not null;index" json:"id_venta"`
	ProductID uint      `gorm:"column:id_producto;not null;index" json:"id_producto"`
	Quantity  int       `gorm:"column:cantidad;not null;default:1" json:"cantidad"`
	UnitPrice int64     `gorm:"column:precio_unitario;not null" json:"-"` // cents
	Discount  int64     `gorm:"column:descuento;not null;default:0" json:"-"`
	Subtotal  int64     `gorm:"column:subtotal;not null" json:"-"`
	CreatedAt time.Time `json:"-"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l SaleLine) MarshalJSON() ([]byte, error) {
	type Alias SaleLine
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

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "detalle_venta"
}
