package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/request"
	"github.com/esteticaluz/salon-pos-api/internal/presentation/http/dto/response"
)

// CashierHandler handles the POS terminal endpoints: the dashboard the
// cashier builds carts from, the settlement itself and receipt reprints.
type CashierHandler struct {
	catalogService    *service.CatalogService
	settlementService *service.SettlementService
	receiptService    *service.ReceiptService
}

// NewCashierHandler creates a new cashier handler
func NewCashierHandler(
	catalogService *service.CatalogService,
	settlementService *service.SettlementService,
	receiptService *service.ReceiptService,
) *CashierHandler {
	return &CashierHandler{
		catalogService:    catalogService,
		settlementService: settlementService,
		receiptService:    receiptService,
	}
}

// Dashboard returns everything the POS terminal needs to build a cart
// @Summary Cashier dashboard
// @Tags cashier
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cashier/dashboard [get]
func (h *CashierHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.catalogService.Dashboard(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard loaded", dashboard)
}

// Settle converts the cart into a committed sale, invoice and payment
// @Summary Settle a cart
// @Tags cashier
// @Accept json
// @Produce json
// @Param request body request.SettlementRequest true "Cart to settle"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /cashier/sales [post]
func (h *CashierHandler) Settle(c *gin.Context) {
	var req request.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.settlementService.Settle(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	// Printing must not fail an already committed sale
	if h.receiptService != nil {
		if err := h.receiptService.PrintInvoice(c.Request.Context(), receipt.InvoiceID); err != nil {
			log.Printf("cashier: receipt for %s not printed: %v", receipt.InvoiceNumber, err)
		}
	}

	response.Created(c, "Venta registrada", response.NewSettlementResponse(receipt))
}

// Reprint sends an existing invoice to the receipt printer again
// @Summary Reprint a receipt
// @Tags cashier
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cashier/invoices/{id}/print [post]
func (h *CashierHandler) Reprint(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	if err := h.receiptService.PrintInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
