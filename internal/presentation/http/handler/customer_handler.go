package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/response"
	"github.com/esteticaluz/salon-pos-api/pkg/pagination"
)

// CustomerHandler handles customer lookup for the POS terminal
type CustomerHandler struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerHandler {
	return &CustomerHandler{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// List searches customers by cedula or name, paginated
// @Summary List customers
// @Tags customers
// @Produce json
// @Param search query string false "Cedula or name fragment"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} response.APIResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	customers, total, err := h.customerRepo.List(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total))
	response.OK(c, "Customers loaded", result)
}

// GetByCedula looks a customer up by their national ID
// @Summary Get customer by cedula
// @Tags customers
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /customers/cedula/{cedula} [get]
func (h *CustomerHandler) GetByCedula(c *gin.Context) {
	customer, err := h.customerRepo.GetByCedula(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if customer == nil {
		response.ErrorWithCode(c, 404, "Cliente no encontrado")
		return
	}
	response.OK(c, "Customer loaded", customer)
}

// Invoice returns a settled invoice with its lines
// @Summary Get invoice
// @Tags customers
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *CustomerHandler) Invoice(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	invoice, err := h.invoiceRepo.GetWithLines(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if invoice == nil {
		response.ErrorWithCode(c, 404, "Factura no encontrada")
		return
	}
	response.OK(c, "Invoice loaded", invoice)
}
