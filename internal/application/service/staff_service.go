package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/pkg/apperror"
)

// StaffService covers the admin and manager back office: branch oversight,
// manager assignment, hiring and firing, and branch inventory review.
type StaffService struct {
	employeeRepo    repository.EmployeeRepository
	branchRepo      repository.BranchRepository
	appointmentRepo repository.AppointmentRepository
	inventoryRepo   repository.InventoryRepository
}

// NewStaffService creates a new staff service
func NewStaffService(
	employeeRepo repository.EmployeeRepository,
	branchRepo repository.BranchRepository,
	appointmentRepo repository.AppointmentRepository,
	inventoryRepo repository.InventoryRepository,
) *StaffService {
	return &StaffService{
		employeeRepo:    employeeRepo,
		branchRepo:      branchRepo,
		appointmentRepo: appointmentRepo,
		inventoryRepo:   inventoryRepo,
	}
}

// BranchOverview pairs a branch with its assigned manager, if any
type BranchOverview struct {
	Branch  entity.Branch    `json:"sucursal"`
	Manager *entity.Employee `json:"gerente,omitempty"`
}

// BranchesWithManagers returns every branch and its manager
func (s *StaffService) BranchesWithManagers(ctx context.Context) ([]BranchOverview, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	managers, err := s.employeeRepo.ListByRole(ctx, enum.RoleManager)
	if err != nil {
		return nil, err
	}

	byBranch := make(map[uint]*entity.Employee, len(managers))
	for i := range managers {
		byBranch[managers[i].BranchID] = &managers[i]
	}

	overview := make([]BranchOverview, 0, len(branches))
	for _, branch := range branches {
		overview = append(overview, BranchOverview{
			Branch:  branch,
			Manager: byBranch[branch.ID],
		})
	}
	return overview, nil
}

// BranchesWithoutManager lists branches still needing a manager
func (s *StaffService) BranchesWithoutManager(ctx context.Context) ([]entity.Branch, error) {
	return s.branchRepo.ListWithoutManager(ctx)
}

// HireInput is a new staff member
type HireInput struct {
	BranchID   uint
	Cedula     string
	GivenNames string
	Surnames   string
	Phone      string
	Specialty  string
	Role       enum.EmployeeRole
	Password   string
}

// Hire registers a new employee at a branch. Only one manager per branch
// is allowed.
func (s *StaffService) Hire(ctx context.Context, input HireInput) (*entity.Employee, error) {
	input.Cedula = strings.TrimSpace(input.Cedula)
	if len(input.Cedula) != 10 {
		return nil, apperror.NewValidationError("Cedula debe tener 10 digitos")
	}
	if input.GivenNames == "" || input.Surnames == "" {
		return nil, apperror.NewValidationError("Nombres y apellidos son requeridos")
	}
	if !input.Role.IsValid() {
		return nil, apperror.NewValidationError("Rol invalido")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Sucursal")
	}

	existing, err := s.employeeRepo.GetByCedula(ctx, input.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("La cedula ya pertenece a un empleado")
	}

	if input.Role == enum.RoleManager {
		managers, err := s.employeeRepo.ListByRole(ctx, enum.RoleManager)
		if err != nil {
			return nil, err
		}
		for i := range managers {
			if managers[i].BranchID == input.BranchID {
				return nil, apperror.NewConflictError("La sucursal ya tiene gerente asignado")
			}
		}
	}

	employee := &entity.Employee{
		BranchID:   input.BranchID,
		Cedula:     input.Cedula,
		GivenNames: input.GivenNames,
		Surnames:   input.Surnames,
		Role:       input.Role,
		Status:     "Activo",
	}
	if input.Phone != "" {
		employee.Phone = &input.Phone
	}
	if input.Specialty != "" {
		employee.Specialty = &input.Specialty
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = string(hash)
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Fire removes an employee. Employees with pending appointments cannot be
// removed until those appointments are settled or cancelled.
func (s *StaffService) Fire(ctx context.Context, id uint) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Empleado")
	}
	if employee.Role == enum.RoleAdmin {
		return apperror.ErrForbidden
	}

	pending, err := s.appointmentRepo.CountPendingByEmployee(ctx, id)
	if err != nil {
		return err
	}
	if pending > 0 {
		return apperror.NewConflictError("El empleado tiene citas pendientes")
	}

	return s.employeeRepo.Delete(ctx, id)
}

// BranchStaff lists a branch's specialists
func (s *StaffService) BranchStaff(ctx context.Context, branchID uint) ([]entity.Employee, error) {
	return s.employeeRepo.ListSpecialists(ctx, branchID)
}

// InventoryLine is a stock row annotated with its status
type InventoryLine struct {
	ProductID    uint   `json:"id_producto"`
	ProductName  string `json:"nombre"`
	Category     string `json:"categoria"`
	CurrentStock int    `json:"stock_actual"`
	MinimumStock int    `json:"stock_minimo"`
	Status       string `json:"estado"`
}

// BranchInventory returns a branch's stock annotated with availability
func (s *StaffService) BranchInventory(ctx context.Context, branchID uint) ([]InventoryLine, error) {
	rows, err := s.inventoryRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	lines := make([]InventoryLine, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		lines = append(lines, InventoryLine{
			ProductID:    r.ProductID,
			ProductName:  r.Product.Name,
			Category:     r.Product.Category.Name,
			CurrentStock: r.CurrentStock,
			MinimumStock: r.MinimumStock,
			Status:       string(enum.StockStatusFor(r.CurrentStock, r.MinimumStock)),
		})
	}
	return lines, nil
}

// RestockInput adjusts a branch's stock level for a product
type RestockInput struct {
	BranchID     uint
	ProductID    uint
	CurrentStock int
	MinimumStock int
}

// Restock sets the stock levels of a product at a branch
func (s *StaffService) Restock(ctx context.Context, input RestockInput) error {
	if input.BranchID == 0 || input.ProductID == 0 {
		return apperror.NewValidationError("Sucursal y producto son requeridos")
	}
	if input.CurrentStock < 0 || input.MinimumStock < 0 {
		return apperror.NewValidationError("El stock no puede ser negativo")
	}
	return s.inventoryRepo.Upsert(ctx, &entity.BranchInventory{
		BranchID:     input.BranchID,
		ProductID:    input.ProductID,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
	})
}
