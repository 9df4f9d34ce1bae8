package entity

import "time"

// Invoice representa la factura de una orden (relación uno a uno).
type Invoice struct {
	Base
	CompanyID     string    `json:"companyId"`
	OrderID       string    `json:"orderId"`
	InvoiceNumber string    `json:"invoiceNumber"` // único global
	Date          time.Time `json:"date"`
}

// OwnerCompany implementa CompanyOwned.
func (i *Invoice) OwnerCompany() string { return i.CompanyID }
