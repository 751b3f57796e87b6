package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	domainrepo "github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/internal/infrastructure/repository"
)

type settlementEnv struct {
	db  *gorm.DB
	svc *SettlementService

	branch      entity.Branch
	cashier     entity.Employee
	product     entity.Product
	service     entity.Service
	booked      entity.Customer
	appointment entity.Appointment
}

func newSettlementEnv(t *testing.T) *settlementEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Branch{},
		&entity.Employee{},
		&entity.Customer{},
		&entity.ProductCategory{},
		&entity.Product{},
		&entity.ServiceCategory{},
		&entity.Service{},
		&entity.Appointment{},
		&entity.Sale{},
		&entity.SaleLine{},
		&entity.Invoice{},
		&entity.InvoiceLine{},
		&entity.Payment{},
	))

	env := &settlementEnv{db: db}

	env.branch = entity.Branch{Name: "Sucursal Norte", City: "Quito"}
	require.NoError(t, db.Create(&env.branch).Error)

	env.cashier = entity.Employee{
		BranchID:   env.branch.ID,
		Cedula:     "0912345678",
		GivenNames: "Maria",
		Surnames:   "Velez",
		Role:       enum.RoleCashier,
	}
	require.NoError(t, db.Create(&env.cashier).Error)

	category := entity.ProductCategory{Name: "Cuidado capilar"}
	require.NoError(t, db.Create(&category).Error)
	env.product = entity.Product{CategoryID: category.ID, Name: "Shampoo", PurchasePrice: 1000}
	require.NoError(t, db.Create(&env.product).Error)

	svcCategory := entity.ServiceCategory{Name: "Peluqueria"}
	require.NoError(t, db.Create(&svcCategory).Error)
	env.service = entity.Service{CategoryID: svcCategory.ID, Name: "Corte de cabello", BasePrice: 2000}
	require.NoError(t, db.Create(&env.service).Error)

	env.booked = entity.Customer{Cedula: "0999999999", GivenNames: "Lucia", Surnames: "Mora"}
	require.NoError(t, db.Create(&env.booked).Error)

	env.appointment = entity.Appointment{
		BranchID:   env.branch.ID,
		CustomerID: env.booked.ID,
		EmployeeID: env.cashier.ID,
		Date:       time.Now(),
		Time:       "10:00",
		Status:     enum.AppointmentPending,
	}
	require.NoError(t, db.Create(&env.appointment).Error)

	env.svc = NewSettlementService(repository.NewSettlementUnitOfWork(db))

	return env
}

func (e *settlementEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func uintPtr(v uint) *uint { return &v }

func TestSettleEndToEnd(t *testing.T) {
	env := newSettlementEnv(t)

	input := &SettlementInput{
		BranchID:  env.branch.ID,
		CashierID: env.cashier.ID,
		Cedula:    "1234567890",
		FullName:  "Ana Lopez",
		Lines: []SettlementLine{
			{
				Kind:        LineProduct,
				ReferenceID: env.product.ID,
				Quantity:    2,
				UnitPrice:   1500,
				Discount:    0,
				Subtotal:    3000,
			},
			{
				Kind:                LineService,
				ReferenceID:         env.service.ID,
				UnitPrice:           2000,
				Discount:            500,
				Subtotal:            1500,
				SourceAppointmentID: uintPtr(env.appointment.ID),
			},
		},
		Subtotal:      4500,
		Tax:           540,
		Total:         5040,
		PaymentMethod: "Efectivo",
	}

	receipt, err := env.svc.Settle(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, int64(5040), receipt.Total)
	assert.Contains(t, receipt.InvoiceNumber, "F-")

	// Exactly one new customer, split into given and family names
	var customer entity.Customer
	require.NoError(t, env.db.First(&customer, "cedula = ?", "1234567890").Error)
	assert.Equal(t, "Ana", customer.GivenNames)
	assert.Equal(t, "Lopez", customer.Surnames)
	assert.Equal(t, customer.ID, receipt.CustomerID)

	// One sale with one product line
	var sale entity.Sale
	require.NoError(t, env.db.Preload("Lines").First(&sale, receipt.SaleID).Error)
	assert.Equal(t, int64(4500), sale.Total)
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, 2, sale.Lines[0].Quantity)
	assert.Equal(t, int64(3000), sale.Lines[0].Subtotal)

	// One invoice with one service line and the caller's totals
	var invoice entity.Invoice
	require.NoError(t, env.db.Preload("Lines").First(&invoice, receipt.InvoiceID).Error)
	assert.Equal(t, int64(4500), invoice.Subtotal)
	assert.Equal(t, int64(540), invoice.Tax)
	assert.Equal(t, int64(5040), invoice.Total)
	require.Len(t, invoice.Lines, 1)
	assert.Equal(t, int64(1500), invoice.Lines[0].Subtotal)
	require.NotNil(t, invoice.Lines[0].SourceAppointmentID)
	assert.Equal(t, env.appointment.ID, *invoice.Lines[0].SourceAppointmentID)

	// Appointment transitioned to attended
	var appointment entity.Appointment
	require.NoError(t, env.db.First(&appointment, env.appointment.ID).Error)
	assert.Equal(t, enum.AppointmentAttended, appointment.Status)

	// One payment carrying the full total
	var payment entity.Payment
	require.NoError(t, env.db.First(&payment, "id_factura = ?", invoice.ID).Error)
	assert.Equal(t, "Efectivo", payment.Method)
	assert.Equal(t, int64(5040), payment.Amount)
}

func TestSettleAtomicity(t *testing.T) {
	env := newSettlementEnv(t)

	// Force every settlement to generate the same invoice number so the
	// second attempt dies on the uniqueness constraint mid-transaction.
	env.svc.invoiceNumber = func() string { return "F-FIXED-001" }

	newInput := func(cedula string) *SettlementInput {
		return &SettlementInput{
			BranchID:  env.branch.ID,
			CashierID: env.cashier.ID,
			Cedula:    cedula,
			FullName:  "Cliente Prueba",
			Lines: []SettlementLine{
				{Kind: LineProduct, ReferenceID: env.product.ID, Quantity: 1, UnitPrice: 1000, Subtotal: 1000},
			},
			Subtotal:      1000,
			Tax:           120,
			Total:         1120,
			PaymentMethod: "Tarjeta",
		}
	}

	_, err := env.svc.Settle(context.Background(), newInput("1111111111"))
	require.NoError(t, err)

	_, err = env.svc.Settle(context.Background(), newInput("2222222222"))
	require.Error(t, err)

	// Nothing from the failed attempt is visible
	assert.Equal(t, int64(1), env.count(t, &entity.Sale{}))
	assert.Equal(t, int64(1), env.count(t, &entity.SaleLine{}))
	assert.Equal(t, int64(1), env.count(t, &entity.Invoice{}))
	assert.Equal(t, int64(1), env.count(t, &entity.Payment{}))
	var n int64
	require.NoError(t, env.db.Model(&entity.Customer{}).Where("cedula = ?", "2222222222").Count(&n).Error)
	assert.Zero(t, n)
}

func TestSettleCustomerDedup(t *testing.T) {
	env := newSettlementEnv(t)

	input := func() *SettlementInput {
		return &SettlementInput{
			BranchID:  env.branch.ID,
			CashierID: env.cashier.ID,
			Cedula:    "1717171717",
			FullName:  "Pedro Paez",
			Lines: []SettlementLine{
				{Kind: LineProduct, ReferenceID: env.product.ID, Quantity: 1, UnitPrice: 500, Subtotal: 500},
			},
			Subtotal:      500,
			Tax:           60,
			Total:         560,
			PaymentMethod: "Efectivo",
		}
	}

	first, err := env.svc.Settle(context.Background(), input())
	require.NoError(t, err)
	second, err := env.svc.Settle(context.Background(), input())
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)

	var n int64
	require.NoError(t, env.db.Model(&entity.Customer{}).Where("cedula = ?", "1717171717").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSettleIdempotentAppointmentTransition(t *testing.T) {
	env := newSettlementEnv(t)

	input := func() *SettlementInput {
		return &SettlementInput{
			BranchID:   env.branch.ID,
			CashierID:  env.cashier.ID,
			CustomerID: uintPtr(env.booked.ID),
			Lines: []SettlementLine{
				{
					Kind:                LineService,
					ReferenceID:         env.service.ID,
					UnitPrice:           2000,
					Subtotal:            2000,
					SourceAppointmentID: uintPtr(env.appointment.ID),
				},
			},
			Subtotal:      2000,
			Tax:           240,
			Total:         2240,
			PaymentMethod: "Efectivo",
		}
	}

	_, err := env.svc.Settle(context.Background(), input())
	require.NoError(t, err)

	// Second cart referencing the same appointment still settles
	_, err = env.svc.Settle(context.Background(), input())
	require.NoError(t, err)

	var appointment entity.Appointment
	require.NoError(t, env.db.First(&appointment, env.appointment.ID).Error)
	assert.Equal(t, enum.AppointmentAttended, appointment.Status)
	assert.Equal(t, int64(2), env.count(t, &entity.Invoice{}))
}

func TestSettleTotalsPassThrough(t *testing.T) {
	env := newSettlementEnv(t)

	// Line subtotals deliberately do not add up to the cart totals; the
	// engine stamps the caller's figures without recomputation.
	receipt, err := env.svc.Settle(context.Background(), &SettlementInput{
		BranchID:   env.branch.ID,
		CashierID:  env.cashier.ID,
		CustomerID: uintPtr(env.booked.ID),
		Lines: []SettlementLine{
			{Kind: LineProduct, ReferenceID: env.product.ID, Quantity: 3, UnitPrice: 1000, Discount: 500, Subtotal: 2500},
		},
		Subtotal:      10000,
		Tax:           1200,
		Total:         11200,
		PaymentMethod: "Transferencia",
	})
	require.NoError(t, err)

	var sale entity.Sale
	require.NoError(t, env.db.Preload("Lines").First(&sale, receipt.SaleID).Error)
	assert.Equal(t, int64(10000), sale.Total)
	require.Len(t, sale.Lines, 1)

	// Line amounts are stored exactly as submitted
	assert.Equal(t, 3, sale.Lines[0].Quantity)
	assert.Equal(t, int64(1000), sale.Lines[0].UnitPrice)
	assert.Equal(t, int64(500), sale.Lines[0].Discount)
	assert.Equal(t, int64(2500), sale.Lines[0].Subtotal)

	var invoice entity.Invoice
	require.NoError(t, env.db.First(&invoice, receipt.InvoiceID).Error)
	assert.Equal(t, int64(10000), invoice.Subtotal)
	assert.Equal(t, int64(1200), invoice.Tax)
	assert.Equal(t, int64(11200), invoice.Total)
}

func TestSettleServiceOnlyCart(t *testing.T) {
	env := newSettlementEnv(t)

	receipt, err := env.svc.Settle(context.Background(), &SettlementInput{
		BranchID:   env.branch.ID,
		CashierID:  env.cashier.ID,
		CustomerID: uintPtr(env.booked.ID),
		Lines: []SettlementLine{
			{Kind: LineService, ReferenceID: env.service.ID, UnitPrice: 2000, Subtotal: 2000},
		},
		Subtotal:      2000,
		Tax:           240,
		Total:         2240,
		PaymentMethod: "Efectivo",
	})
	require.NoError(t, err)

	var sale entity.Sale
	require.NoError(t, env.db.Preload("Lines").First(&sale, receipt.SaleID).Error)
	assert.Empty(t, sale.Lines)
	assert.Equal(t, int64(2000), sale.Total)

	var invoice entity.Invoice
	require.NoError(t, env.db.Preload("Lines").First(&invoice, receipt.InvoiceID).Error)
	assert.Len(t, invoice.Lines, 1)
}

func TestSettleProductOnlyCart(t *testing.T) {
	env := newSettlementEnv(t)

	receipt, err := env.svc.Settle(context.Background(), &SettlementInput{
		BranchID:   env.branch.ID,
		CashierID:  env.cashier.ID,
		CustomerID: uintPtr(env.booked.ID),
		Lines: []SettlementLine{
			{Kind: LineProduct, ReferenceID: env.product.ID, Quantity: 1, UnitPrice: 1300, Subtotal: 1300},
		},
		Subtotal:      1300,
		Tax:           156,
		Total:         1456,
		PaymentMethod: "Efectivo",
	})
	require.NoError(t, err)

	var invoice entity.Invoice
	require.NoError(t, env.db.Preload("Lines").First(&invoice, receipt.InvoiceID).Error)
	assert.Empty(t, invoice.Lines)

	var sale entity.Sale
	require.NoError(t, env.db.Preload("Lines").First(&sale, receipt.SaleID).Error)
	assert.Len(t, sale.Lines, 1)
}

func TestSettleValidation(t *testing.T) {
	env := newSettlementEnv(t)

	valid := func() *SettlementInput {
		return &SettlementInput{
			BranchID:   env.branch.ID,
			CashierID:  env.cashier.ID,
			CustomerID: uintPtr(env.booked.ID),
			Lines: []SettlementLine{
				{Kind: LineProduct, ReferenceID: env.product.ID, Quantity: 1, UnitPrice: 100, Subtotal: 100},
			},
			Subtotal:      100,
			Tax:           12,
			Total:         112,
			PaymentMethod: "Efectivo",
		}
	}

	tests := []struct {
		name   string
		mutate func(*SettlementInput)
	}{
		{"missing branch", func(in *SettlementInput) { in.BranchID = 0 }},
		{"missing cashier", func(in *SettlementInput) { in.CashierID = 0 }},
		{"no customer reference", func(in *SettlementInput) { in.CustomerID = nil; in.Cedula = "" }},
		{"empty cart", func(in *SettlementInput) { in.Lines = nil }},
		{"missing payment method", func(in *SettlementInput) { in.PaymentMethod = "" }},
		{"negative total", func(in *SettlementInput) { in.Total = -1 }},
		{"unknown line kind", func(in *SettlementInput) { in.Lines[0].Kind = "COMBO" }},
		{"line without reference", func(in *SettlementInput) { in.Lines[0].ReferenceID = 0 }},
		{"negative line amount", func(in *SettlementInput) { in.Lines[0].Subtotal = -100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(input)

			_, err := env.svc.Settle(context.Background(), input)
			require.Error(t, err)
		})
	}

	// Rejected carts never touch storage
	assert.Zero(t, env.count(t, &entity.Sale{}))
	assert.Zero(t, env.count(t, &entity.Invoice{}))
	assert.Zero(t, env.count(t, &entity.Payment{}))
}

func TestSettleExistingCustomerByID(t *testing.T) {
	env := newSettlementEnv(t)

	receipt, err := env.svc.Settle(context.Background(), &SettlementInput{
		BranchID:   env.branch.ID,
		CashierID:  env.cashier.ID,
		CustomerID: uintPtr(env.booked.ID),
		Lines: []SettlementLine{
			{Kind: LineProduct, ReferenceID: env.product.ID, Quantity: 1, UnitPrice: 800, Subtotal: 800},
		},
		Subtotal:      800,
		Tax:           96,
		Total:         896,
		PaymentMethod: "Efectivo",
	})
	require.NoError(t, err)
	assert.Equal(t, env.booked.ID, receipt.CustomerID)

	// No new customer row was created
	assert.Equal(t, int64(1), env.count(t, &entity.Customer{}))
}

func TestInvoiceNumberUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		n := NewInvoiceNumber()
		if _, dup := seen[n]; dup {
			t.Fatalf("duplicate invoice number after %d iterations: %s", i, n)
		}
		seen[n] = struct{}{}
	}
}

func TestProductQuantityDefaultsToOne(t *testing.T) {
	input := &SettlementInput{
		BranchID:   1,
		CashierID:  1,
		CustomerID: uintPtr(1),
		Lines: []SettlementLine{
			{Kind: LineProduct, ReferenceID: 5, UnitPrice: 100, Subtotal: 100},
			{Kind: LineService, ReferenceID: 3, Quantity: 7, UnitPrice: 100, Subtotal: 100},
		},
		PaymentMethod: "Efectivo",
	}

	require.NoError(t, input.Validate())
	assert.Equal(t, 1, input.Lines[0].Quantity)
	// Services always occupy exactly one unit
	assert.Equal(t, 1, input.Lines[1].Quantity)
}

// raceStore simulates losing the customer-insert race: the first lookup
// misses, the insert hits the unique index on cedula, and the second lookup
// finds the row the winning transaction committed.
type raceStore struct {
	existing entity.Customer

	finds   int
	creates int
}

func (s *raceStore) FindCustomerByCedula(ctx context.Context, cedula string) (*entity.Customer, error) {
	s.finds++
	if s.finds == 1 {
		return nil, nil
	}
	return &s.existing, nil
}

func (s *raceStore) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	s.creates++
	return gorm.ErrDuplicatedKey
}

func (s *raceStore) CreateSale(ctx context.Context, sale *entity.Sale) error {
	sale.ID = 1
	return nil
}

func (s *raceStore) AddSaleLine(ctx context.Context, line *entity.SaleLine) error { return nil }

func (s *raceStore) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	invoice.ID = 1
	return nil
}

func (s *raceStore) AddInvoiceLine(ctx context.Context, line *entity.InvoiceLine) error { return nil }

func (s *raceStore) MarkAppointmentAttended(ctx context.Context, appointmentID uint) error {
	return nil
}

func (s *raceStore) FinalizeTotals(ctx context.Context, saleID, invoiceID uint, subtotal, tax, total int64) error {
	return nil
}

func (s *raceStore) RecordPayment(ctx context.Context, payment *entity.Payment) error { return nil }

type storeUnitOfWork struct {
	store domainrepo.SettlementStore
}

func (u storeUnitOfWork) Do(ctx context.Context, fn func(store domainrepo.SettlementStore) error) error {
	return fn(u.store)
}

func TestSettleCustomerInsertRace(t *testing.T) {
	store := &raceStore{existing: entity.Customer{
		ID:         77,
		Cedula:     "1717171717",
		GivenNames: "Rosa",
		Surnames:   "Castro",
	}}
	svc := NewSettlementService(storeUnitOfWork{store: store})

	receipt, err := svc.Settle(context.Background(), &SettlementInput{
		BranchID:  1,
		CashierID: 1,
		Cedula:    "1717171717",
		FullName:  "Rosa Castro",
		Lines: []SettlementLine{
			{Kind: LineProduct, ReferenceID: 5, Quantity: 1, UnitPrice: 1200, Subtotal: 1200},
		},
		Subtotal:      1200,
		Tax:           144,
		Total:         1344,
		PaymentMethod: "Efectivo",
	})
	require.NoError(t, err)

	// The settlement attaches to the winner's customer row
	assert.Equal(t, uint(77), receipt.CustomerID)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 2, store.finds)
}

func TestInvoiceNumberFormat(t *testing.T) {
	n := NewInvoiceNumber()
	var millis int64
	var suffix string
	_, err := fmt.Sscanf(n, "F-%d-%s", &millis, &suffix)
	require.NoError(t, err)
	assert.Greater(t, millis, int64(0))
	assert.Len(t, suffix, 8)
}
