package entity

import (
	"encoding/json"
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
)

// Promotion is a time-bounded discount attachable to products or services.
// Fixed discounts store their value in cents; percentage discounts store
// the percentage as an integer number of basis-hundredths (e.g. 15 = 15%).
type Promotion struct {
	ID           uint              `gorm:"primaryKey" json:"id_promocion"`
	Name         string            `gorm:"column:nombre;size:80;not null" json:"nombre"`
	DiscountType enum.DiscountType `gorm:"column:tipo_descuento;size:15;not null" json:"tipo_descuento"`
	Value        int64             `gorm:"column:valor_descuento;not null" json:"valor_descuento"`
	StartDate    time.Time         `gorm:"column:fecha_inicio;type:date;not null" json:"fecha_inicio"`
	EndDate      time.Time         `gorm:"column:fecha_fin;type:date;not null" json:"fecha_fin"`
	Active       bool              `gorm:"column:activa;default:true" json:"activa"`
	CreatedAt    time.Time         `json:"-"`
	UpdatedAt    time.Time         `json:"-"`

	// Relationships
	Products []Product `gorm:"many2many:producto_promociones" json:"-"`
	Services []Service `gorm:"many2many:servicio_promociones" json:"-"`
}

// MarshalJSON exposes fixed discount values as decimals; percentages as-is
func (p Promotion) MarshalJSON() ([]byte, error) {
	type Alias Promotion
	value := float64(p.Value)
	if p.DiscountType == enum.DiscountFixed {
		value = float64(p.Value) / 100
	}
	return json.Marshal(&struct {
		Alias
		Value float64 `json:"valor_descuento"`
	}{
		Alias: Alias(p),
		Value: value,
	})
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promociones"
}
