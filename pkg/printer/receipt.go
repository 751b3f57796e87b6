package printer

import (
	"fmt"
	"time"
)

// ReceiptLine is one printed line item.
type ReceiptLine struct {
	Quantity int
	Name     string
	Subtotal float64
}

// Receipt holds everything needed to render a settlement receipt.
type Receipt struct {
	BranchName    string
	BranchAddress string
	InvoiceNumber string
	IssuedAt      time.Time
	CustomerName  string
	Products      []ReceiptLine
	Services      []ReceiptLine
	Subtotal      float64
	Tax           float64
	Total         float64
	PaymentMethod string
}

// Render builds the ESC/POS byte stream for the receipt at the given
// character width.
func (r *Receipt) Render(charWidth int) []byte {
	d := NewDocument(charWidth)

	d.SetAlign(AlignCenter).
		SetFontSize(FontDouble).
		Text(r.BranchName).
		SetFontSize(FontNormal)
	if r.BranchAddress != "" {
		d.Text(r.BranchAddress)
	}
	d.Text(r.IssuedAt.Format("02/01/2006 15:04")).
		Text("Factura " + r.InvoiceNumber).
		SetAlign(AlignLeft).
		Separator('-')

	if r.CustomerName != "" {
		d.Text("Cliente: " + r.CustomerName).
			Separator('-')
	}

	for _, line := range r.Products {
		d.ItemLine(line.Quantity, line.Name, money(line.Subtotal))
	}
	for _, line := range r.Services {
		d.ItemLine(line.Quantity, line.Name, money(line.Subtotal))
	}

	d.Separator('-').
		KeyValue("Subtotal", money(r.Subtotal)).
		KeyValue("IVA", money(r.Tax)).
		SetBold(true).
		KeyValue("TOTAL", money(r.Total)).
		SetBold(false).
		KeyValue("Pago", r.PaymentMethod).
		SetAlign(AlignCenter).
		FeedLines(1).
		Text("Gracias por su visita").
		FeedLines(3).
		Cut()

	return d.Bytes()
}

func money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
