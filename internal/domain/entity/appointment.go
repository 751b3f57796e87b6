package entity

import (
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
)

// Appointment is a scheduled service booking. Settlement only ever moves it
// from Pendiente to Atendida; it is never created or deleted by settlement.
type Appointment struct {
	ID         uint                   `gorm:"primaryKey" json:"id_cita"`
	BranchID   uint                   `gorm:"column:id_sucursal;not null;index" json:"id_sucursal"`
	CustomerID uint                   `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	EmployeeID uint                   `gorm:"column:id_empleado;not null;index" json:"id_empleado"`
	Date       time.Time              `gorm:"column:fecha;type:date;not null" json:"fecha"`
	Time       string                 `gorm:"column:hora;size:5;not null" json:"hora"`
	Status     enum.AppointmentStatus `gorm:"column:estado;size:10;not null;default:'Pendiente'" json:"estado"`
	Channel    string                 `gorm:"column:canal_origen;size:10;default:'Web'" json:"canal_origen"`
	CreatedAt  time.Time              `json:"-"`
	UpdatedAt  time.Time              `json:"-"`

	// Relationships
	Branch   Branch   `gorm:"foreignKey:BranchID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "citas"
}
