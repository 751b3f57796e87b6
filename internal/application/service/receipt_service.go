package service

import (
	"context"
	"log"

	"github.com/esteticaluz/salon-pos-api/internal/domain/entity"
	"github.com/esteticaluz/salon-pos-api/internal/domain/repository"
	"github.com/esteticaluz/salon-pos-api/pkg/apperror"
	"github.com/esteticaluz/salon-pos-api/pkg/printer"
	"github.com/esteticaluz/salon-pos-api/pkg/utils"
)

// ReceiptService renders settled invoices as ESC/POS receipts and sends
// them to the branch printer.
type ReceiptService struct {
	invoiceRepo repository.InvoiceRepository
	printer     printer.Printer
	charWidth   int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(invoiceRepo repository.InvoiceRepository, p printer.Printer, charWidth int) *ReceiptService {
	if charWidth <= 0 {
		charWidth = 42
	}
	return &ReceiptService{
		invoiceRepo: invoiceRepo,
		printer:     p,
		charWidth:   charWidth,
	}
}

// BuildReceipt assembles the printable receipt from a settled invoice
func BuildReceipt(invoice *entity.Invoice) *printer.Receipt {
	receipt := &printer.Receipt{
		BranchName:    invoice.Branch.Name,
		BranchAddress: invoice.Branch.Address,
		InvoiceNumber: invoice.Number,
		IssuedAt:      invoice.IssueDate,
		CustomerName:  invoice.Customer.FullName(),
		Subtotal:      utils.Decimal(invoice.Subtotal),
		Tax:           utils.Decimal(invoice.Tax),
		Total:         utils.Decimal(invoice.Total),
	}
	if invoice.Payment != nil {
		receipt.PaymentMethod = invoice.Payment.Method
	}

	for i := range invoice.Sale.Lines {
		l := &invoice.Sale.Lines[i]
		receipt.Products = append(receipt.Products, printer.ReceiptLine{
			Quantity: l.Quantity,
			Name:     l.Product.Name,
			Subtotal: utils.Decimal(l.Subtotal),
		})
	}
	for i := range invoice.Lines {
		l := &invoice.Lines[i]
		receipt.Services = append(receipt.Services, printer.ReceiptLine{
			Quantity: l.Quantity,
			Name:     l.Service.Name,
			Subtotal: utils.Decimal(l.Subtotal),
		})
	}
	return receipt
}

// PrintInvoice renders and prints the receipt for a settled invoice.
// Printing is best effort; the sale is already committed when it runs.
func (s *ReceiptService) PrintInvoice(ctx context.Context, invoiceID uint) error {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Factura")
	}

	data := BuildReceipt(invoice).Render(s.charWidth)
	if err := s.printer.Print(data); err != nil {
		log.Printf("receipt: print failed for invoice %s: %v", invoice.Number, err)
		return err
	}
	return nil
}
