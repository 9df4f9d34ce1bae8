package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/scope"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// BusinessPartnerUseCase CRUD de socios de negocio (clientes y
// proveedores). Nombre y email son únicos dentro de la empresa.
type BusinessPartnerUseCase struct {
	scoped *scope.Repo[*entity.BusinessPartner]
	repo   repository.BusinessPartnerRepository
}

// NewBusinessPartnerUseCase construye el caso de uso.
func NewBusinessPartnerUseCase(repo repository.BusinessPartnerRepository) *BusinessPartnerUseCase {
	return &BusinessPartnerUseCase{scoped: scope.New[*entity.BusinessPartner]("BusinessPartner", repo), repo: repo}
}

// ListAll lista los socios de la empresa del llamador.
func (uc *BusinessPartnerUseCase) ListAll(callerCompanyID string) ([]*entity.BusinessPartner, error) {
	return uc.scoped.ListAll(callerCompanyID)
}

// GetByID obtiene un socio (de la misma empresa) por id.
func (uc *BusinessPartnerUseCase) GetByID(id, callerCompanyID string) (*entity.BusinessPartner, error) {
	return uc.scoped.GetByID(id, callerCompanyID)
}

// Create crea un socio en la empresa del llamador.
func (uc *BusinessPartnerUseCase) Create(companyID string, in dto.CreateBusinessPartnerRequest, actingUserID string) (*entity.BusinessPartner, error) {
	if in.Type != entity.PartnerCustomer && in.Type != entity.PartnerSupplier {
		return nil, fmt.Errorf("tipo de socio %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("socio ya registrado: %w", domain.ErrConflict)
	}
	if existing, err := uc.repo.GetByCompanyAndEmail(companyID, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("email de socio ya registrado: %w", domain.ErrConflict)
	}
	now := time.Now()
	partner := &entity.BusinessPartner{
		Base:      entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		CompanyID: companyID,
		Name:      in.Name,
		Email:     in.Email,
		Type:      in.Type,
	}
	if err := uc.repo.Create(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// Update modifica un socio chequeando unicidad de los campos que cambian.
func (uc *BusinessPartnerUseCase) Update(id string, in dto.UpdateBusinessPartnerRequest, actingUserID, callerCompanyID string) (*entity.BusinessPartner, error) {
	partner, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != partner.Name {
		existing, err := uc.repo.GetByCompanyAndName(partner.CompanyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("nombre de socio ya registrado: %w", domain.ErrConflict)
		}
		partner.Name = *in.Name
	}
	if in.Email != nil && *in.Email != partner.Email {
		existing, err := uc.repo.GetByCompanyAndEmail(partner.CompanyID, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("email de socio ya registrado: %w", domain.ErrConflict)
		}
		partner.Email = *in.Email
	}
	if in.Type != nil {
		if *in.Type != entity.PartnerCustomer && *in.Type != entity.PartnerSupplier {
			return nil, fmt.Errorf("tipo de socio %q: %w", *in.Type, domain.ErrInvalidInput)
		}
		partner.Type = *in.Type
	}
	partner.ModifiedBy = actingUserID
	partner.UpdatedAt = time.Now()
	if err := uc.repo.Update(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// Delete marca el borrado lógico del socio.
func (uc *BusinessPartnerUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}
