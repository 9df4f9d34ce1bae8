package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Store[*entity.Product]
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	GetByCompanyAndName(companyID, name string) (*entity.Product, error)
}
