package entity

import (
	"encoding/json"
	"time"
)

// ProductCategory groups retail products
type ProductCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id_categoria_producto"`
	Name string `gorm:"column:nombre;size:60;not null" json:"nombre"`
}

// TableName returns the table name for the ProductCategory model
func (ProductCategory) TableName() string {
	return "categorias_producto"
}

// Product represents a retail product. The purchase price is stored in cents;
// the selling base price is derived at listing time with the retail markup.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id_producto"`
	CategoryID    uint      `gorm:"column:id_categoria_producto;not null;index" json:"id_categoria_producto"`
	Name          string    `gorm:"column:nombre;size:80;not null" json:"nombre"`
	PurchasePrice int64     `gorm:"column:precio_compra;not null" json:"-"` // cents
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Relationships
	Category   ProductCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Promotions []Promotion     `gorm:"many2many:producto_promociones" json:"-"`
}

// retailMarkup is applied on the purchase price to obtain the selling price.
const retailMarkup = 1.30

// BasePrice returns the selling base price in cents
func (p *Product) BasePrice() int64 {
	return int64(float64(p.PurchasePrice) * retailMarkup)
}

// MarshalJSON custom marshaler exposing the derived base price as a decimal
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		BasePrice float64 `json:"precio_base"`
	}{
		Alias:     Alias(p),
		BasePrice: float64(p.BasePrice()) / 100,
	})
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "productos"
}

// BranchInventory tracks stock of a product at one branch
type BranchInventory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BranchID     uint      `gorm:"column:id_sucursal;not null;uniqueIndex:idx_inventario_sucursal_producto" json:"id_sucursal"`
	ProductID    uint      `gorm:"column:id_producto;not null;uniqueIndex:idx_inventario_sucursal_producto" json:"id_producto"`
	CurrentStock int       `gorm:"column:stock_actual;not null;default:0" json:"stock_actual"`
	MinimumStock int       `gorm:"column:stock_minimo;not null;default:0" json:"stock_minimo"`
	UpdatedAt    time.Time `json:"-"`

	// Relationships
	Branch  Branch  `gorm:"foreignKey:BranchID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the BranchInventory model
func (BranchInventory) TableName() string {
	return "inventario_sucursal"
}
