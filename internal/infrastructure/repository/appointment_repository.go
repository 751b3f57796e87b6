package repository

import (
	"context"
	"errors"
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	domainRepo "github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListPendingByBranch(ctx context.Context, branchID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Employee").
		Where("id_sucursal = ? AND estado = ?", branchID, enum.AppointmentPending).
		Order("hora").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Branch").
		Preload("Employee").
		Where("id_cliente = ?", customerID).
		Order("fecha DESC, hora DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) TakenTimes(ctx context.Context, employeeID uint, date time.Time) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id_empleado = ? AND fecha = ? AND estado <> ?", employeeID, date, enum.AppointmentCanceled).
		Pluck("hora", &times).Error
	return times, err
}

func (r *appointmentRepository) CountPendingByEmployee(ctx context.Context, employeeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id_empleado = ? AND estado = ?", employeeID, enum.AppointmentPending).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}
