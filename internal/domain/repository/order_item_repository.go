package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OrderItemRepository define el puerto de persistencia para OrderItem (DIP).
// Las lecturas llenan OrderCompanyID con la empresa de la orden padre,
// que es el tenant efectivo de la línea.
type OrderItemRepository interface {
	Store[*entity.OrderItem]
	Create(item *entity.OrderItem) error
	Update(item *entity.OrderItem) error
	// GetByOrderAndProduct chequea que no haya dos líneas del mismo
	// producto en una orden. Devuelve nil, nil si no existe.
	GetByOrderAndProduct(orderID, productID string) (*entity.OrderItem, error)
}
