package repository

import (
	"context"
	"errors"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	domainRepo "github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

// settlementStore performs every settlement write against a single *gorm.DB
// handle. Bound to a transaction by settlementUnitOfWork, it never commits
// or rolls back on its own.
type settlementStore struct {
	tx *gorm.DB
}

func (s *settlementStore) FindCustomerByCedula(ctx context.Context, cedula string) (*entity.Customer, error) {
	var customer entity.Customer
	err := s.tx.WithContext(ctx).First(&customer, "cedula = ?", cedula).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer inserts inside a savepoint. On Postgres a failed INSERT
// aborts the surrounding transaction, so without the savepoint the caller's
// retry-by-lookup after a uniqueness violation could never run.
func (s *settlementStore) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	return s.tx.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(customer).Error
	})
}

func (s *settlementStore) CreateSale(ctx context.Context, sale *entity.Sale) error {
	return s.tx.WithContext(ctx).Create(sale).Error
}

func (s *settlementStore) AddSaleLine(ctx context.Context, line *entity.SaleLine) error {
	return s.tx.WithContext(ctx).Create(line).Error
}

func (s *settlementStore) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	return s.tx.WithContext(ctx).Create(invoice).Error
}

func (s *settlementStore) AddInvoiceLine(ctx context.Context, line *entity.InvoiceLine) error {
	return s.tx.WithContext(ctx).Create(line).Error
}

// MarkAppointmentAttended is a conditional update: zero affected rows means
// the appointment was already attended or cancelled, which is not an error.
func (s *settlementStore) MarkAppointmentAttended(ctx context.Context, appointmentID uint) error {
	return s.tx.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND estado = ?", appointmentID, enum.AppointmentPending).
		Update("estado", enum.AppointmentAttended).Error
}

func (s *settlementStore) FinalizeTotals(ctx context.Context, saleID, invoiceID uint, subtotal, tax, total int64) error {
	if err := s.tx.WithContext(ctx).Model(&entity.Sale{}).
		Where("id = ?", saleID).
		Update("total", subtotal).Error; err != nil {
		return err
	}
	return s.tx.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", invoiceID).
		Updates(map[string]interface{}{
			"subtotal": subtotal,
			"iva":      tax,
			"total":    total,
		}).Error
}

func (s *settlementStore) RecordPayment(ctx context.Context, payment *entity.Payment) error {
	return s.tx.WithContext(ctx).Create(payment).Error
}

type settlementUnitOfWork struct {
	db *gorm.DB
}

// NewSettlementUnitOfWork creates the transaction boundary used by the
// settlement service
func NewSettlementUnitOfWork(db *gorm.DB) domainRepo.SettlementUnitOfWork {
	return &settlementUnitOfWork{db: db}
}

// Do runs fn inside one database transaction. gorm commits when fn returns
// nil and rolls back otherwise; the original error is always returned.
func (u *settlementUnitOfWork) Do(ctx context.Context, fn func(store domainRepo.SettlementStore) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&settlementStore{tx: tx})
	})
}
