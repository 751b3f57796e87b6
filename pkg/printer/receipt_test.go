package printer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRender(t *testing.T) {
	receipt := &Receipt{
		BranchName:    "Sucursal Matriz",
		BranchAddress: "Av. Amazonas 123",
		InvoiceNumber: "F-1756700000000-a1b2c3d4",
		IssuedAt:      time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		CustomerName:  "Ana Lopez",
		Products: []ReceiptLine{
			{Quantity: 2, Name: "Shampoo", Subtotal: 30.00},
		},
		Services: []ReceiptLine{
			{Quantity: 1, Name: "Corte de cabello", Subtotal: 15.00},
		},
		Subtotal:      45.00,
		Tax:           5.40,
		Total:         50.40,
		PaymentMethod: "Efectivo",
	}

	data := receipt.Render(42)
	require.NotEmpty(t, data)

	out := string(data)
	assert.Contains(t, out, "Sucursal Matriz")
	assert.Contains(t, out, "F-1756700000000-a1b2c3d4")
	assert.Contains(t, out, "Ana Lopez")
	assert.Contains(t, out, "Shampoo")
	assert.Contains(t, out, "Corte de cabello")
	assert.Contains(t, out, "$45.00")
	assert.Contains(t, out, "$5.40")
	assert.Contains(t, out, "$50.40")
	assert.Contains(t, out, "Efectivo")
	assert.Contains(t, out, "15/03/2026 14:30")

	// Ends with a paper cut command
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, data[len(data)-3:])
}

func TestReceiptRenderWithoutCustomer(t *testing.T) {
	receipt := &Receipt{
		BranchName:    "Sucursal Norte",
		InvoiceNumber: "F-1-abcdef00",
		IssuedAt:      time.Now(),
		Total:         10.00,
		PaymentMethod: "Tarjeta",
	}

	data := receipt.Render(32)
	assert.NotEmpty(t, data)
	assert.NotContains(t, string(data), "Cliente:")
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte("anything")))
	assert.False(t, p.IsConnected())
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)
}
