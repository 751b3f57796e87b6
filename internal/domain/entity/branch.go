package entity

import (
	"time"
)

// Branch represents a physical business location
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id_sucursal"`
	Name      string    `gorm:"column:nombre;size:60;not null" json:"nombre"`
	Address   string    `gorm:"column:direccion;size:120" json:"direccion,omitempty"`
	City      string    `gorm:"column:ciudad;size:60" json:"ciudad,omitempty"`
	Phone     string    `gorm:"column:telefono;size:10" json:"telefono,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relationships
	Employees    []Employee        `gorm:"foreignKey:BranchID" json:"-"`
	Inventory    []BranchInventory `gorm:"foreignKey:BranchID" json:"-"`
	Appointments []Appointment     `gorm:"foreignKey:BranchID" json:"-"`
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "sucursales"
}
