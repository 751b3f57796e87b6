package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/esteticaluz/salon-pos-api/internal/config"
	"github.com/esteticaluz/salon-pos-api/internal/domain/enum"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/handler"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/middleware"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Cashier     *handler.CashierHandler
	Appointment *handler.AppointmentHandler
	Customer    *handler.CustomerHandler
	Admin       *handler.AdminHandler
	Manager     *handler.ManagerHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	limiter := middleware.NewIPRateLimiter(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration)
	router.Use(limiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	if deps.Cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	auth := middleware.AuthMiddleware(deps.JWTManager)
	staffOnly := middleware.RequireRoles(
		enum.RoleAdmin.String(),
		enum.RoleManager.String(),
		enum.RoleCashier.String(),
	)

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/auth/login", h.Auth.Login)
		v1.POST("/auth/register", h.Auth.Register)

		booking := v1.Group("/appointments")
		{
			booking.GET("/branches", h.Appointment.Branches)
			booking.GET("/specialties", h.Appointment.Specialties)
			booking.GET("/specialists", h.Appointment.Specialists)
			booking.GET("/slots", h.Appointment.Slots)

			booking.POST("", auth, h.Appointment.Book)
			booking.GET("/mine", auth, h.Appointment.Mine)
			booking.DELETE("/:id", auth, h.Appointment.Cancel)
		}

		cashier := v1.Group("/cashier", auth, middleware.RequireRoles(enum.RoleCashier.String()))
		{
			cashier.GET("/dashboard", h.Cashier.Dashboard)
			cashier.POST("/sales", h.Cashier.Settle)
			cashier.POST("/invoices/:id/print", h.Cashier.Reprint)
		}

		staff := v1.Group("", auth, staffOnly)
		{
			staff.GET("/customers", h.Customer.List)
			staff.GET("/customers/cedula/:cedula", h.Customer.GetByCedula)
			staff.GET("/invoices/:id", h.Customer.Invoice)
		}

		admin := v1.Group("/admin", auth, middleware.RequireRoles(enum.RoleAdmin.String()))
		{
			admin.GET("/branches", h.Admin.Branches)
			admin.GET("/branches/unmanaged", h.Admin.UnmanagedBranches)
			admin.POST("/managers", h.Admin.HireManager)
			admin.DELETE("/employees/:id", h.Admin.RemoveEmployee)
		}

		manager := v1.Group("/manager", auth, middleware.RequireRoles(enum.RoleAdmin.String(), enum.RoleManager.String()))
		{
			manager.GET("/branches/:id/staff", h.Manager.Staff)
			manager.POST("/employees", h.Manager.Hire)
			manager.DELETE("/employees/:id", h.Manager.Fire)
			manager.GET("/branches/:id/inventory", h.Manager.Inventory)
			manager.PUT("/branches/:id/inventory", h.Manager.Restock)
		}
	}

	return router
}
