package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices. Los nombres de campo
// son los que envía el punto de venta.
type CreateInvoiceRequest struct {
	InvoiceID     string               `json:"invoiceId"`
	CustomerPhone string               `json:"customerPhone"`
	Date          string               `json:"date"` // yyyy-mm-dd
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	Total         decimal.Decimal      `json:"total"`
	Items         []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea del carrito. Solo type == "medicine" descuenta
// stock; ItemName e ItemPrice quedan congelados en el detalle histórico.
type InvoiceItemRequest struct {
	ItemID         string          `json:"itemId"`
	ItemName       string          `json:"itemName"`
	ItemPrice      decimal.Decimal `json:"itemPrice"`
	ItemQuantity   int64           `json:"itemQuantity"`
	ItemTotalPrice decimal.Decimal `json:"itemTotalPrice"`
	Type           string          `json:"type"`
}

// InvoiceResponse cabecera de factura en respuestas.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoiceId"`
	CustomerPhone string          `json:"customerPhone"`
	Date          string          `json:"date"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvoiceDetailResponse línea de detalle en respuestas.
type InvoiceDetailResponse struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"invoiceId"`
	ItemID         string          `json:"itemId"`
	ItemName       string          `json:"itemName"`
	ItemPrice      decimal.Decimal `json:"itemPrice"`
	ItemQuantity   int64           `json:"itemQuantity"`
	ItemTotalPrice decimal.Decimal `json:"itemTotalPrice"`
	Type           string          `json:"type"`
}

// CreateInvoiceResponse respuesta de POST /api/invoices.
type CreateInvoiceResponse struct {
	Message        string                  `json:"message"`
	Invoice        InvoiceResponse         `json:"invoice"`
	InvoiceDetails []InvoiceDetailResponse `json:"invoiceDetails"`
}
