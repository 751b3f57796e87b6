package entity

import (
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
)

// Employee represents a staff member of a branch: cashiers, managers,
// specialists and the platform admin share this table, distinguished by role.
type Employee struct {
	ID           uint              `gorm:"primaryKey" json:"id_empleado"`
	BranchID     uint              `gorm:"column:id_sucursal;not null;index" json:"id_sucursal"`
	Cedula       string            `gorm:"column:cedula;type:char(10);uniqueIndex;not null" json:"cedula"`
	GivenNames   string            `gorm:"column:nombres;size:60;not null" json:"nombres"`
	Surnames     string            `gorm:"column:apellidos;size:60;not null" json:"apellidos"`
	Specialty    *string           `gorm:"column:especialidad;size:20" json:"especialidad,omitempty"`
	Phone        *string           `gorm:"column:telefono;size:10" json:"telefono,omitempty"`
	Status       string            `gorm:"column:estado;size:10;default:'Activo'" json:"estado"`
	Role         enum.EmployeeRole `gorm:"column:rol;size:20;not null" json:"rol"`
	PasswordHash string            `gorm:"column:contrasena;size:100" json:"-"`
	CreatedAt    time.Time         `json:"-"`
	UpdatedAt    time.Time         `json:"-"`

	// Relationships
	Branch    Branch         `gorm:"foreignKey:BranchID" json:"-"`
	Schedules []WorkSchedule `gorm:"foreignKey:EmployeeID" json:"-"`
}

// FullName returns the display name used across dashboards
func (e *Employee) FullName() string {
	return e.GivenNames + " " + e.Surnames
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "empleados"
}

// WorkSchedule is an employee's working window for one weekday.
// Times are stored as HH:MM strings, matching the slot granularity.
type WorkSchedule struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID uint   `gorm:"column:id_empleado;not null;index" json:"id_empleado"`
	Weekday    string `gorm:"column:dia_semana;size:10;not null" json:"dia_semana"`
	StartTime  string `gorm:"column:hora_inicio;size:5;not null" json:"hora_inicio"`
	EndTime    string `gorm:"column:hora_fin;size:5;not null" json:"hora_fin"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TableName returns the table name for the WorkSchedule model
func (WorkSchedule) TableName() string {
	return "horarios_empleado"
}
