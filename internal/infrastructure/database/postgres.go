package database

import (
	"fmt"
	"log"

	"github.com/esteticaluz/salon-pos-api/internal/config"
	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Location and staff
		&entity.Branch{},
		&entity.Employee{},
		&entity.WorkSchedule{},

		// Customers
		&entity.Customer{},

		// Catalog
		&entity.ProductCategory{},
		&entity.Product{},
		&entity.BranchInventory{},
		&entity.ServiceCategory{},
		&entity.Service{},
		&entity.Promotion{},

		// Bookings
		&entity.Appointment{},

		// Settlement aggregates
		&entity.Sale{},
		&entity.SaleLine{},
		&entity.Invoice{},
		&entity.InvoiceLine{},
		&entity.Payment{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the default branch and admin account when the
// database is empty
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var branch entity.Branch
	if err := db.First(&branch).Error; err != nil {
		branch = entity.Branch{
			Name:    "Sucursal Matriz",
			Address: "Av. Principal y Calle 1",
			City:    "Quito",
			Phone:   "0999999999",
		}
		if err := db.Create(&branch).Error; err != nil {
			return fmt.Errorf("failed to seed default branch: %w", err)
		}
	}

	var admin entity.Employee
	if err := db.Where("rol = ?", enum.RoleAdmin).First(&admin).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin = entity.Employee{
			BranchID:     branch.ID,
			Cedula:       "0000000000",
			GivenNames:   "Administrador",
			Surnames:     "Sistema",
			Role:         enum.RoleAdmin,
			Status:       "Activo",
			PasswordHash: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed default admin: %w", err)
		}
		log.Println("Default admin created (cedula 0000000000)")
	}

	log.Println("Seeding completed")
	return nil
}
