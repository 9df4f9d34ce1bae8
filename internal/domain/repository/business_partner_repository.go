package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// BusinessPartnerRepository define el puerto de persistencia para
// BusinessPartner (DIP). Nombre y email son únicos por empresa.
type BusinessPartnerRepository interface {
	Store[*entity.BusinessPartner]
	Create(partner *entity.BusinessPartner) error
	Update(partner *entity.BusinessPartner) error
	GetByCompanyAndName(companyID, name string) (*entity.BusinessPartner, error)
	GetByCompanyAndEmail(companyID, email string) (*entity.BusinessPartner, error)
}
