package entity

import (
	"encoding/json"
	"time"
)

// ServiceCategory groups bookable services
type ServiceCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id_categoria_servicio"`
	Name string `gorm:"column:nombre;size:60;not null" json:"nombre"`
}

// TableName returns the table name for the ServiceCategory model
func (ServiceCategory) TableName() string {
	return "categorias_servicio"
}

// Service represents a bookable salon service
type Service struct {
	ID              uint      `gorm:"primaryKey" json:"id_servicio"`
	CategoryID      uint      `gorm:"column:id_categoria_servicio;not null;index" json:"id_categoria_servicio"`
	Name            string    `gorm:"column:nombre;size:80;not null" json:"nombre"`
	BasePrice       int64     `gorm:"column:precio_base;not null" json:"-"` // cents
	DurationMinutes int       `gorm:"column:duracion_minutos;not null;default:60" json:"duracion_minutos"`
	Status          string    `gorm:"column:estado;size:10;default:'Activo'" json:"estado"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	// Relationships
	Category   ServiceCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Promotions []Promotion     `gorm:"many2many:servicio_promociones" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Service) MarshalJSON() ([]byte, error) {
	type Alias Service
	return json.Marshal(&struct {
		Alias
		BasePrice float64 `json:"precio_base"`
	}{
		Alias:     Alias(s),
		BasePrice: float64(s.BasePrice) / 100,
	})
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "servicios"
}
