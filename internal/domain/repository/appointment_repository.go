package repository

import (
	"context"
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uint) (*entity.Appointment, error)
	// ListPendingByBranch returns the branch's pending appointments ordered
	// by time, with customer and employee preloaded
	ListPendingByBranch(ctx context.Context, branchID uint) ([]entity.Appointment, error)
	// ListByCustomer returns a customer's appointments, newest date first
	ListByCustomer(ctx context.Context, customerID uint) ([]entity.Appointment, error)
	// TakenTimes returns the HH:MM start times of an employee's
	// non-cancelled appointments on the given date
	TakenTimes(ctx context.Context, employeeID uint, date time.Time) ([]string, error)
	// CountPendingByEmployee counts the employee's pending appointments
	CountPendingByEmployee(ctx context.Context, employeeID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}
