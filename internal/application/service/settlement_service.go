package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/pkg/apperror"
	"github.com/esteticaluz/salon-pos-api/pkg/metrics"
	"github.com/google/uuid"
)

// Line kinds accepted in a settlement cart
const (
	LineProduct = "PRODUCTO"
	LineService = "SERVICIO"
)

// Defaults used when a walk-in customer is created without a full name
const (
	defaultGivenName = "Cliente"
	defaultSurname   = "General"
)

// SettlementLine is one cart line. Amounts arrive in cents exactly as the
// terminal computed them; the engine stores them without recomputation.
type SettlementLine struct {
	Kind                string
	ReferenceID         uint // product or service id
	Quantity            int  // products only, defaults to 1
	UnitPrice           int64
	Discount            int64
	Subtotal            int64
	SourceAppointmentID *uint // services sold from a booked appointment
}

// SettlementInput is a cashier's cart ready to be settled
type SettlementInput struct {
	BranchID  uint
	CashierID uint

	// Either an existing customer id or a cedula for lookup/creation
	CustomerID *uint
	Cedula     string
	FullName   string
	Phone      string
	Email      string

	Lines []SettlementLine // cart order

	Subtotal int64
	Tax      int64
	Total    int64

	PaymentMethod string
}

// SettlementReceipt is returned to the terminal after commit
type SettlementReceipt struct {
	InvoiceID     uint
	InvoiceNumber string
	CustomerID    uint
	SaleID        uint
	Total         int64
}

// SettlementService settles a cart as one all-or-nothing transaction: it
// resolves the customer, writes the sale and invoice aggregates, transitions
// attended appointments, stamps totals and records the payment, then commits.
type SettlementService struct {
	uow repository.SettlementUnitOfWork

	now           func() time.Time
	invoiceNumber func() string
}

// NewSettlementService creates a new settlement service
func NewSettlementService(uow repository.SettlementUnitOfWork) *SettlementService {
	return &SettlementService{
		uow:           uow,
		now:           time.Now,
		invoiceNumber: NewInvoiceNumber,
	}
}

// NewInvoiceNumber generates an opaque, globally unique invoice number of
// the form F-<millisecond-timestamp>-<random-hex-suffix>. Uniqueness is
// probabilistic; the unique index on facturas.num_factura is the backstop.
func NewInvoiceNumber() string {
	return fmt.Sprintf("F-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}

// Validate rejects malformed carts before any transaction begins
func (in *SettlementInput) Validate() error {
	if in.BranchID == 0 {
		return apperror.NewValidationError("id_sucursal es requerido")
	}
	if in.CashierID == 0 {
		return apperror.NewValidationError("id_cajero es requerido")
	}
	if in.CustomerID == nil && in.Cedula == "" {
		return apperror.NewValidationError("se requiere id_cliente o cedula_cliente")
	}
	if len(in.Lines) == 0 {
		return apperror.NewValidationError("el carrito no tiene items")
	}
	if in.PaymentMethod == "" {
		return apperror.NewValidationError("metodo_pago es requerido")
	}
	if in.Subtotal < 0 || in.Tax < 0 || in.Total < 0 {
		return apperror.NewValidationError("los totales no pueden ser negativos")
	}
	for i := range in.Lines {
		line := &in.Lines[i]
		switch line.Kind {
		case LineProduct, LineService:
		default:
			return apperror.NewValidationError(fmt.Sprintf("item %d: tipo desconocido %q", i, line.Kind))
		}
		if line.ReferenceID == 0 {
			return apperror.NewValidationError(fmt.Sprintf("item %d: falta el id del producto o servicio", i))
		}
		if line.Kind == LineProduct && line.Quantity == 0 {
			line.Quantity = 1
		}
		if line.Kind == LineService {
			line.Quantity = 1
		}
		if line.Quantity < 1 {
			return apperror.NewValidationError(fmt.Sprintf("item %d: cantidad invalida", i))
		}
		if line.UnitPrice < 0 || line.Discount < 0 || line.Subtotal < 0 {
			return apperror.NewValidationError(fmt.Sprintf("item %d: montos negativos", i))
		}
	}
	return nil
}

// Settle runs the settlement state machine inside one transaction. Any
// failure after the transaction begins rolls back every write and the
// original error is surfaced; nothing is retried except the single
// customer-insert race below.
func (s *SettlementService) Settle(ctx context.Context, input *SettlementInput) (*SettlementReceipt, error) {
	if err := input.Validate(); err != nil {
		metrics.SettlementsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	var receipt SettlementReceipt

	err := s.uow.Do(ctx, func(store repository.SettlementStore) error {
		customerID, err := s.resolveCustomer(ctx, store, input)
		if err != nil {
			return err
		}

		sale := &entity.Sale{
			BranchID:  input.BranchID,
			CashierID: input.CashierID,
			SaleDate:  s.now(),
		}
		if err := store.CreateSale(ctx, sale); err != nil {
			return err
		}

		// Product lines, in cart order
		for i := range input.Lines {
			line := &input.Lines[i]
			if line.Kind != LineProduct {
				continue
			}
			err := store.AddSaleLine(ctx, &entity.SaleLine{
				SaleID:    sale.ID,
				ProductID: line.ReferenceID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Discount:  line.Discount,
				Subtotal:  line.Subtotal,
			})
			if err != nil {
				return err
			}
		}

		invoice := &entity.Invoice{
			SaleID:     sale.ID,
			CustomerID: customerID,
			BranchID:   input.BranchID,
			Number:     s.invoiceNumber(),
			IssueDate:  s.now(),
		}
		if err := store.CreateInvoice(ctx, invoice); err != nil {
			return err
		}

		// Service lines, in cart order; booked services transition their
		// appointment, idempotently, so a resubmitted cart still settles.
		for i := range input.Lines {
			line := &input.Lines[i]
			if line.Kind != LineService {
				continue
			}
			err := store.AddInvoiceLine(ctx, &entity.InvoiceLine{
				InvoiceID:           invoice.ID,
				ServiceID:           line.ReferenceID,
				Quantity:            1,
				UnitPrice:           line.UnitPrice,
				Discount:            line.Discount,
				Subtotal:            line.Subtotal,
				SourceAppointmentID: line.SourceAppointmentID,
			})
			if err != nil {
				return err
			}
			if line.SourceAppointmentID != nil {
				if err := store.MarkAppointmentAttended(ctx, *line.SourceAppointmentID); err != nil {
					return err
				}
			}
		}

		// Totals are the caller-supplied figures, stamped without
		// recomputation from the line rows.
		if err := store.FinalizeTotals(ctx, sale.ID, invoice.ID, input.Subtotal, input.Tax, input.Total); err != nil {
			return err
		}

		err = store.RecordPayment(ctx, &entity.Payment{
			InvoiceID: invoice.ID,
			Date:      s.now(),
			Method:    input.PaymentMethod,
			Amount:    input.Total,
		})
		if err != nil {
			return err
		}

		receipt = SettlementReceipt{
			InvoiceID:     invoice.ID,
			InvoiceNumber: invoice.Number,
			CustomerID:    customerID,
			SaleID:        sale.ID,
			Total:         input.Total,
		}
		return nil
	})

	if err != nil {
		log.Printf("settlement rolled back: branch=%d cashier=%d cedula=%s: %v",
			input.BranchID, input.CashierID, input.Cedula, err)
		metrics.SettlementsTotal.WithLabelValues(metrics.OutcomeRolledBack).Inc()
		return nil, err
	}

	metrics.SettlementsTotal.WithLabelValues(metrics.OutcomeCommitted).Inc()
	metrics.SettledAmountCents.Add(float64(receipt.Total))
	return &receipt, nil
}

// resolveCustomer returns the id of an existing customer or creates one
// inside the active transaction. Two concurrent settlements for the same
// new cedula can both miss the lookup and race on insert; the unique index
// on clientes.cedula rejects the loser, which then re-resolves by lookup
// exactly once.
func (s *SettlementService) resolveCustomer(ctx context.Context, store repository.SettlementStore, input *SettlementInput) (uint, error) {
	if input.CustomerID != nil {
		return *input.CustomerID, nil
	}

	existing, err := store.FindCustomerByCedula(ctx, input.Cedula)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	customer := &entity.Customer{
		Cedula:     input.Cedula,
		GivenNames: defaultGivenName,
		Surnames:   defaultSurname,
	}
	if parts := strings.Fields(input.FullName); len(parts) > 0 {
		customer.GivenNames = parts[0]
		if len(parts) > 1 {
			customer.Surnames = strings.Join(parts[1:], " ")
		}
	}
	if input.Phone != "" {
		customer.Phone = &input.Phone
	}
	if input.Email != "" {
		customer.Email = &input.Email
	}

	createErr := store.CreateCustomer(ctx, customer)
	if createErr == nil {
		return customer.ID, nil
	}

	// Single retry-by-lookup for the uniqueness race; any other insert
	// failure surfaces the original error.
	existing, err = store.FindCustomerByCedula(ctx, input.Cedula)
	if err == nil && existing != nil {
		return existing.ID, nil
	}
	return 0, createErr
}
