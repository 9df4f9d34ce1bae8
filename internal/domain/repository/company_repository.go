package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Store[*entity.Company]
	Create(company *entity.Company) error
	Update(company *entity.Company) error
	// GetByName devuelve nil, nil si no existe (chequeo de unicidad global).
	GetByName(name string) (*entity.Company, error)
	// SetModifiedBy estampa quién tocó la fila por última vez.
	SetModifiedBy(id, userID string) error
}
