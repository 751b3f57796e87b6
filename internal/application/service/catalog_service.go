package service

import (
	"context"
	"time"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/pkg/apperror"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

// CatalogService assembles the cashier dashboard: the cashier's branch,
// its pending appointments, sellable products and active services, each
// with its currently active promotion and effective price already resolved.
type CatalogService struct {
	employeeRepo    repository.EmployeeRepository
	appointmentRepo repository.AppointmentRepository
	productRepo     repository.ProductRepository
	serviceRepo     repository.ServiceRepository

	now func() time.Time
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	employeeRepo repository.EmployeeRepository,
	appointmentRepo repository.AppointmentRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
) *CatalogService {
	return &CatalogService{
		employeeRepo:    employeeRepo,
		appointmentRepo: appointmentRepo,
		productRepo:     productRepo,
		serviceRepo:     serviceRepo,
		now:             time.Now,
	}
}

// PricedItem is a catalog entry with its promotion applied
type PricedItem struct {
	ID             uint    `json:"id"`
	Name           string  `json:"nombre"`
	Category       string  `json:"categoria,omitempty"`
	BasePrice      float64 `json:"precio_base"`
	EffectivePrice float64 `json:"precio_efectivo"`
	Stock          int     `json:"stock,omitempty"`
	Duration       int     `json:"duracion_minutos,omitempty"`
	PromotionID    *uint   `json:"id_promocion,omitempty"`
	PromotionName  string  `json:"promocion_nombre,omitempty"`
}

// PendingAppointment is a branch appointment awaiting settlement
type PendingAppointment struct {
	ID           uint   `json:"id_cita"`
	Time         string `json:"hora"`
	CustomerID   uint   `json:"id_cliente"`
	CustomerName string `json:"cliente"`
	Cedula       string `json:"cedula"`
	EmployeeName string `json:"empleado"`
	Specialty    string `json:"especialidad,omitempty"`
	Date         string `json:"fecha"`
}

// CashierDashboard is everything the POS terminal needs to build a cart
type CashierDashboard struct {
	Cashier      *entity.Employee     `json:"cajero"`
	BranchName   string               `json:"nombre_sucursal"`
	Appointments []PendingAppointment `json:"citas"`
	Products     []PricedItem         `json:"productos"`
	Services     []PricedItem         `json:"servicios"`
}

// Dashboard loads the POS dashboard for one cashier
func (s *CatalogService) Dashboard(ctx context.Context, cashierID uint) (*CashierDashboard, error) {
	cashier, err := s.employeeRepo.GetByID(ctx, cashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.NewNotFoundError("Cajero")
	}

	appointments, err := s.appointmentRepo.ListPendingByBranch(ctx, cashier.BranchID)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingAppointment, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		item := PendingAppointment{
			ID:           a.ID,
			Time:         a.Time,
			Date:         a.Date.Format("2006-01-02"),
			CustomerID:   a.CustomerID,
			CustomerName: a.Customer.FullName(),
			Cedula:       a.Customer.Cedula,
			EmployeeName: a.Employee.FullName(),
		}
		if a.Employee.Specialty != nil {
			item.Specialty = *a.Employee.Specialty
		}
		pending = append(pending, item)
	}

	products, err := s.Products(ctx, cashier.BranchID)
	if err != nil {
		return nil, err
	}

	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}

	return &CashierDashboard{
		Cashier:      cashier,
		BranchName:   cashier.Branch.Name,
		Appointments: pending,
		Products:     products,
		Services:     services,
	}, nil
}

// Products lists a branch's in-stock products with effective prices
func (s *CatalogService) Products(ctx context.Context, branchID uint) ([]PricedItem, error) {
	stocked, err := s.productRepo.ListInStock(ctx, branchID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]PricedItem, 0, len(stocked))
	for i := range stocked {
		p := &stocked[i].Product
		base := p.BasePrice()
		item := PricedItem{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.Category.Name,
			BasePrice:      utils.Decimal(base),
			EffectivePrice: utils.Decimal(base),
			Stock:          stocked[i].Stock,
		}
		if promo := ActivePromotion(p.Promotions, now); promo != nil {
			item.PromotionID = &promo.ID
			item.PromotionName = promo.Name
			item.EffectivePrice = utils.Decimal(EffectiveUnitPrice(base, promo))
		}
		items = append(items, item)
	}
	return items, nil
}

// Services lists active services with effective prices
func (s *CatalogService) Services(ctx context.Context) ([]PricedItem, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]PricedItem, 0, len(services))
	for i := range services {
		svc := &services[i]
		item := PricedItem{
			ID:             svc.ID,
			Name:           svc.Name,
			Category:       svc.Category.Name,
			BasePrice:      utils.Decimal(svc.BasePrice),
			EffectivePrice: utils.Decimal(svc.BasePrice),
			Duration:       svc.DurationMinutes,
		}
		if promo := ActivePromotion(svc.Promotions, now); promo != nil {
			item.PromotionID = &promo.ID
			item.PromotionName = promo.Name
			item.EffectivePrice = utils.Decimal(EffectiveUnitPrice(svc.BasePrice, promo))
		}
		items = append(items, item)
	}
	return items, nil
}
