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

// CompanyUseCase CRUD de empresas. Company es la raíz del tenant: no
// lleva company_id propio, así que el repositorio con alcance no aplica
// chequeo cruzado sobre ella.
type CompanyUseCase struct {
	scoped *scope.Repo[*entity.Company]
	repo   repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{scoped: scope.New[*entity.Company]("Company", repo), repo: repo}
}

// ListAll lista las empresas no borradas.
func (uc *CompanyUseCase) ListAll() ([]*entity.Company, error) {
	return uc.scoped.ListAll("")
}

// GetByID obtiene una empresa por id.
func (uc *CompanyUseCase) GetByID(id string) (*entity.Company, error) {
	return uc.scoped.GetByID(id, "")
}

// Create crea una empresa con nombre único global.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest, actingUserID string) (*entity.Company, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("empresa ya registrada: %w", domain.ErrConflict)
	}
	now := time.Now()
	company := &entity.Company{
		Base: entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		Name: in.Name,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update renombra una empresa chequeando unicidad del nuevo nombre.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest, actingUserID string) (*entity.Company, error) {
	company, err := uc.scoped.GetByID(id, "")
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != company.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("nombre de empresa ya registrado: %w", domain.ErrConflict)
		}
		company.Name = *in.Name
	}
	company.ModifiedBy = actingUserID
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete marca el borrado lógico de la empresa.
func (uc *CompanyUseCase) Delete(id string) error {
	return uc.scoped.DeleteByID(id, "")
}
