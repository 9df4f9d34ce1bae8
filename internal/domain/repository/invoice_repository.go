package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
type InvoiceRepository interface {
	Store[*entity.Invoice]
	Create(invoice *entity.Invoice) error
	Update(invoice *entity.Invoice) error
	// GetByNumber chequea la unicidad global del número de factura.
	GetByNumber(invoiceNumber string) (*entity.Invoice, error)
	// GetByOrder sostiene la relación uno a uno orden-factura.
	GetByOrder(orderID string) (*entity.Invoice, error)
}
