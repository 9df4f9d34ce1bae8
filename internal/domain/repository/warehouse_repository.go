package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Store[*entity.Warehouse]
	Create(warehouse *entity.Warehouse) error
	Update(warehouse *entity.Warehouse) error
	GetByCompanyAndName(companyID, name string) (*entity.Warehouse, error)
}
