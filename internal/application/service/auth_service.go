package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/pkg/apperror"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

// AuthService authenticates by cedula. Employees are checked first so a
// cedula present in both tables logs in as staff.
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	customerRepo repository.CustomerRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	employeeRepo repository.EmployeeRepository,
	customerRepo repository.CustomerRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		jwtManager:   jwtManager,
	}
}

// Session is the result of a successful login
type Session struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Name     string `json:"nombre"`
	Role     string `json:"rol"`
	BranchID uint   `json:"id_sucursal,omitempty"`
}

// Login verifies credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, cedula, password string) (*Session, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" || password == "" {
		return nil, apperror.NewValidationError("Cedula y contrasena son requeridas")
	}

	employee, err := s.employeeRepo.GetByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if employee != nil {
		if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
			return nil, apperror.ErrInvalidCredentials
		}
		token, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Cedula, employee.FullName(), string(employee.Role))
		if err != nil {
			return nil, err
		}
		return &Session{
			Token:    token,
			UserID:   employee.ID,
			Name:     employee.FullName(),
			Role:     string(employee.Role),
			BranchID: employee.BranchID,
		}, nil
	}

	customer, err := s.customerRepo.GetByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.PasswordHash == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*customer.PasswordHash), []byte(password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	token, err := s.jwtManager.GenerateAccessToken(customer.ID, customer.Cedula, customer.FullName(), string(enum.RoleCustomer))
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:  token,
		UserID: customer.ID,
		Name:   customer.FullName(),
		Role:   string(enum.RoleCustomer),
	}, nil
}

// RegistrationInput is a new customer portal account
type RegistrationInput struct {
	Cedula     string
	GivenNames string
	Surnames   string
	Phone      string
	Email      string
	Password   string
}

// Register creates a customer portal account. A walk-in customer created by
// the register without a password gets one attached instead of a duplicate.
func (s *AuthService) Register(ctx context.Context, input RegistrationInput) (*entity.Customer, error) {
	input.Cedula = strings.TrimSpace(input.Cedula)
	if len(input.Cedula) != 10 {
		return nil, apperror.NewValidationError("Cedula debe tener 10 digitos")
	}
	if input.GivenNames == "" || input.Surnames == "" {
		return nil, apperror.NewValidationError("Nombres y apellidos son requeridos")
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewValidationError("Contrasena debe tener al menos 6 caracteres")
	}

	if employee, err := s.employeeRepo.GetByCedula(ctx, input.Cedula); err != nil {
		return nil, err
	} else if employee != nil {
		return nil, apperror.NewConflictError("La cedula ya esta registrada")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	existing, err := s.customerRepo.GetByCedula(ctx, input.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.PasswordHash != nil {
			return nil, apperror.NewConflictError("La cedula ya esta registrada")
		}
		existing.GivenNames = input.GivenNames
		existing.Surnames = input.Surnames
		existing.PasswordHash = &hashed
		if input.Phone != "" {
			existing.Phone = &input.Phone
		}
		if input.Email != "" {
			existing.Email = &input.Email
		}
		if err := s.customerRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	customer := &entity.Customer{
		Cedula:       input.Cedula,
		GivenNames:   input.GivenNames,
		Surnames:     input.Surnames,
		PasswordHash: &hashed,
	}
	if input.Phone != "" {
		customer.Phone = &input.Phone
	}
	if input.Email != "" {
		customer.Email = &input.Email
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
