package entity

import (
	"time"
)

// Customer represents a client of the salon, identified by their national ID.
// The unique index on Cedula is what makes settlement's find-or-create
// resolution safe under concurrent inserts.
type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id_cliente"`
	Cedula       string    `gorm:"column:cedula;type:char(10);uniqueIndex;not null" json:"cedula"`
	GivenNames   string    `gorm:"column:nombres;size:60;not null" json:"nombres"`
	Surnames     string    `gorm:"column:apellidos;size:60;not null" json:"apellidos"`
	Phone        *string   `gorm:"column:telefono;size:10" json:"telefono,omitempty"`
	Email        *string   `gorm:"column:correo;size:30" json:"correo,omitempty"`
	PasswordHash *string   `gorm:"column:contrasena;size:100" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`
	Invoices     []Invoice     `gorm:"foreignKey:CustomerID" json:"-"`
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.GivenNames + " " + c.Surnames
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "clientes"
}
