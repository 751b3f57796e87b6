package repository

import (
	"context"
	"errors"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	domainRepo "github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).Preload("Branch").First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByCedula(ctx context.Context, cedula string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).Preload("Branch").First(&employee, "cedula = ?", cedula).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) ListSpecialists(ctx context.Context, branchID uint) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Where("id_sucursal = ? AND especialidad IS NOT NULL", branchID).
		Order("nombres").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ListByBranchAndSpecialty(ctx context.Context, branchID uint, specialty string) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Where("id_sucursal = ? AND especialidad = ? AND estado = ?", branchID, specialty, "Activo").
		Order("nombres").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ListByRole(ctx context.Context, role enum.EmployeeRole) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Preload("Branch").
		Where("rol = ?", role).
		Order("nombres").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) DistinctSpecialties(ctx context.Context) ([]string, error) {
	var specialties []string
	err := r.db.WithContext(ctx).Model(&entity.Employee{}).
		Where("especialidad IS NOT NULL AND estado = ?", "Activo").
		Distinct().
		Pluck("especialidad", &specialties).Error
	return specialties, err
}

func (r *employeeRepository) GetSchedule(ctx context.Context, employeeID uint, weekday string) (*entity.WorkSchedule, error) {
	var schedule entity.WorkSchedule
	err := r.db.WithContext(ctx).
		First(&schedule, "id_empleado = ? AND dia_semana = ?", employeeID, weekday).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Delete removes the employee's schedules first to honor the FK, then the
// employee row, inside one transaction.
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.WorkSchedule{}, "id_empleado = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Employee{}, "id = ?", id).Error
	})
}

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) domainRepo.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) GetByID(ctx context.Context, id uint) (*entity.Branch, error) {
	var branch entity.Branch
	err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) List(ctx context.Context) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := r.db.WithContext(ctx).Order("nombre").Find(&branches).Error
	return branches, err
}

func (r *branchRepository) ListWithoutManager(ctx context.Context) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM empleados e WHERE e.id_sucursal = sucursales.id AND e.rol = ?)", enum.RoleManager).
		Order("nombre").
		Find(&branches).Error
	return branches, err
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice read repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) GetWithLines(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Branch").
		Preload("Lines.Service").
		Preload("Sale.Lines.Product").
		Preload("Payment").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "num_factura = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
