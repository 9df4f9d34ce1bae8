package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Store[*entity.Order]
	Create(order *entity.Order) error
	Update(order *entity.Order) error
	// GetByCompanyAndNumber chequea la unicidad del número de orden
	// dentro de la empresa. Devuelve nil, nil si no existe.
	GetByCompanyAndNumber(companyID, orderNumber string) (*entity.Order, error)
}
