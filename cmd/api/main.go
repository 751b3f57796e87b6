package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/internal/config"
	"github.com/esteticaluz/salon-pos-api/internal/infrastructure/database"
	"github.com/esteticaluz/salon-pos-api/internal/infrastructure/repository"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/handler"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/routes"
	"github.com/esteticaluz/salon-pos-api/pkg/printer"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settlementUoW := repository.NewSettlementUnitOfWork(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(employeeRepo, customerRepo, jwtManager)
	catalogService := service.NewCatalogService(employeeRepo, appointmentRepo, productRepo, serviceRepo)
	settlementService := service.NewSettlementService(settlementUoW)
	appointmentService := service.NewAppointmentService(appointmentRepo, employeeRepo, branchRepo, customerRepo)
	staffService := service.NewStaffService(employeeRepo, branchRepo, appointmentRepo, inventoryRepo)
	receiptService := service.NewReceiptService(invoiceRepo, thermalPrinter, cfg.Printer.CharWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Cashier:     handler.NewCashierHandler(catalogService, settlementService, receiptService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Customer:    handler.NewCustomerHandler(customerRepo, invoiceRepo),
		Admin:       handler.NewAdminHandler(staffService),
		Manager:     handler.NewManagerHandler(staffService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
