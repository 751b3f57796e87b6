package response

import (
	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

// SettlementResponse is the payload returned after a committed settlement
type SettlementResponse struct {
	InvoiceID     uint    `json:"id_factura"`
	InvoiceNumber string  `json:"num_factura"`
	Total         float64 `json:"total"`
}

// NewSettlementResponse converts the engine's receipt into the wire payload
func NewSettlementResponse(receipt *service.SettlementReceipt) *SettlementResponse {
	return &SettlementResponse{
		InvoiceID:     receipt.InvoiceID,
		InvoiceNumber: receipt.InvoiceNumber,
		Total:         utils.Decimal(receipt.Total),
	}
}
