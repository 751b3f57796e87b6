package request

import (
	"github.com/esteticaluz/salon-pos-api/internal/application/service"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

// SettlementItem is one cart line as submitted by the POS terminal.
// Amounts arrive as decimals and are converted to cents at the boundary.
type SettlementItem struct {
	Type            string  `json:"type" binding:"required"`
	ID              uint    `json:"id"`
	ServiceID       uint    `json:"id_servicio"`
	Quantity        int     `json:"cantidad"`
	OriginalPrice   float64 `json:"precio_original"`
	AppliedDiscount float64 `json:"descuento_aplicado"`
	Subtotal        float64 `json:"subtotal"`
	AppointmentID   *uint   `json:"id_cita,omitempty"`
}

// SettlementRequest is a cashier's cart ready to be settled
type SettlementRequest struct {
	BranchID       uint             `json:"id_sucursal" binding:"required"`
	CashierID      uint             `json:"id_cajero" binding:"required"`
	CustomerID     *uint            `json:"id_cliente,omitempty"`
	CustomerCedula string           `json:"cedula_cliente"`
	CustomerName   string           `json:"nombre_cliente"`
	Phone          string           `json:"telefono"`
	Email          string           `json:"correo"`
	Items          []SettlementItem `json:"items" binding:"required"`
	Subtotal       float64          `json:"subtotal"`
	Tax            float64          `json:"iva"`
	Total          float64          `json:"total"`
	PaymentMethod  string           `json:"metodo_pago" binding:"required"`
}

// ToInput converts the wire request into the settlement engine's input
func (r *SettlementRequest) ToInput() *service.SettlementInput {
	input := &service.SettlementInput{
		BranchID:      r.BranchID,
		CashierID:     r.CashierID,
		CustomerID:    r.CustomerID,
		Cedula:        r.CustomerCedula,
		FullName:      r.CustomerName,
		Phone:         r.Phone,
		Email:         r.Email,
		Subtotal:      utils.Cents(r.Subtotal),
		Tax:           utils.Cents(r.Tax),
		Total:         utils.Cents(r.Total),
		PaymentMethod: r.PaymentMethod,
	}
	for _, item := range r.Items {
		line := service.SettlementLine{
			Kind:                item.Type,
			ReferenceID:         item.ID,
			Quantity:            item.Quantity,
			UnitPrice:           utils.Cents(item.OriginalPrice),
			Discount:            utils.Cents(item.AppliedDiscount),
			Subtotal:            utils.Cents(item.Subtotal),
			SourceAppointmentID: item.AppointmentID,
		}
		if line.Kind == service.LineService {
			line.ReferenceID = item.ServiceID
		}
		input.Lines = append(input.Lines, line)
	}
	return input
}
