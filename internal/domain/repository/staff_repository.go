package repository

import (
	"context"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
)

// EmployeeRepository defines the interface for staff data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uint) (*entity.Employee, error)
	// GetByCedula returns nil without error when no employee matches
	GetByCedula(ctx context.Context, cedula string) (*entity.Employee, error)
	// ListSpecialists returns the branch's employees that carry a
	// specialty (managers and cashiers excluded), ordered by name
	ListSpecialists(ctx context.Context, branchID uint) ([]entity.Employee, error)
	// ListByBranchAndSpecialty returns active employees matching both filters
	ListByBranchAndSpecialty(ctx context.Context, branchID uint, specialty string) ([]entity.Employee, error)
	// ListByRole returns employees with the given role, branch preloaded
	ListByRole(ctx context.Context, role enum.EmployeeRole) ([]entity.Employee, error)
	// DistinctSpecialties returns the active specialties on offer
	DistinctSpecialties(ctx context.Context) ([]string, error)
	// GetSchedule returns the employee's window for a weekday, nil when off
	GetSchedule(ctx context.Context, employeeID uint, weekday string) (*entity.WorkSchedule, error)
	// Delete removes the employee together with their schedules
	Delete(ctx context.Context, id uint) error
}

// BranchRepository defines the interface for branch data operations
type BranchRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Branch, error)
	List(ctx context.Context) ([]entity.Branch, error)
	// ListWithoutManager returns branches that have no manager assigned
	ListWithoutManager(ctx context.Context) ([]entity.Branch, error)
}

// InvoiceRepository defines read access to settled invoices
type InvoiceRepository interface {
	// GetWithLines returns the invoice with customer, lines and their
	// services preloaded
	GetWithLines(ctx context.Context, id uint) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
}
