package repository

import (
	"context"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
)

// SettlementStore is the set of writes a settlement performs. Every method
// runs against the transaction owned by the unit of work; none of them
// commits on its own.
type SettlementStore interface {
	// FindCustomerByCedula returns nil without error when no customer exists
	FindCustomerByCedula(ctx context.Context, cedula string) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	CreateSale(ctx context.Context, sale *entity.Sale) error
	AddSaleLine(ctx context.Context, line *entity.SaleLine) error

	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error
	AddInvoiceLine(ctx context.Context, line *entity.InvoiceLine) error

	// MarkAppointmentAttended transitions Pendiente -> Atendida. When the
	// appointment is not pending the call is a no-op, never an error, so a
	// resubmitted cart settles cleanly.
	MarkAppointmentAttended(ctx context.Context, appointmentID uint) error

	// FinalizeTotals stamps the caller-supplied figures on both aggregates
	FinalizeTotals(ctx context.Context, saleID, invoiceID uint, subtotal, tax, total int64) error

	RecordPayment(ctx context.Context, payment *entity.Payment) error
}

// SettlementUnitOfWork runs fn inside a single storage transaction. The
// transaction commits only when fn returns nil; any error rolls back every
// write fn performed through the store.
type SettlementUnitOfWork interface {
	Do(ctx context.Context, fn func(store SettlementStore) error) error
}
