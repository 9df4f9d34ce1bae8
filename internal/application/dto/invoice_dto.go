package dto

import "time"

// CreateInvoiceRequest payload tipado de creación de factura.
type CreateInvoiceRequest struct {
	OrderID       string    `json:"orderId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	Date          time.Time `json:"date"`
}

// UpdateInvoiceRequest payload de actualización.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string    `json:"invoiceNumber"`
	Date          *time.Time `json:"date"`
}
