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

// WarehouseUseCase CRUD de bodegas. El nombre es único por empresa.
type WarehouseUseCase struct {
	scoped *scope.Repo[*entity.Warehouse]
	repo   repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{scoped: scope.New[*entity.Warehouse]("Warehouse", repo), repo: repo}
}

// ListAll lista las bodegas de la empresa del llamador.
func (uc *WarehouseUseCase) ListAll(callerCompanyID string) ([]*entity.Warehouse, error) {
	return uc.scoped.ListAll(callerCompanyID)
}

// GetByID obtiene una bodega (de la misma empresa) por id.
func (uc *WarehouseUseCase) GetByID(id, callerCompanyID string) (*entity.Warehouse, error) {
	return uc.scoped.GetByID(id, callerCompanyID)
}

// Create crea una bodega en la empresa del llamador.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest, actingUserID string) (*entity.Warehouse, error) {
	if !validSupportType(in.SupportType) {
		return nil, fmt.Errorf("tipo de soporte %q: %w", in.SupportType, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("bodega ya registrada: %w", domain.ErrConflict)
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		Base:        entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		CompanyID:   companyID,
		Name:        in.Name,
		SupportType: in.SupportType,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Update modifica una bodega chequeando unicidad del nombre nuevo.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest, actingUserID, callerCompanyID string) (*entity.Warehouse, error) {
	warehouse, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != warehouse.Name {
		existing, err := uc.repo.GetByCompanyAndName(warehouse.CompanyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("nombre de bodega ya registrado: %w", domain.ErrConflict)
		}
		warehouse.Name = *in.Name
	}
	if in.SupportType != nil {
		if !validSupportType(*in.SupportType) {
			return nil, fmt.Errorf("tipo de soporte %q: %w", *in.SupportType, domain.ErrInvalidInput)
		}
		warehouse.SupportType = *in.SupportType
	}
	warehouse.ModifiedBy = actingUserID
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Delete marca el borrado lógico de la bodega.
func (uc *WarehouseUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}

func validSupportType(t string) bool {
	return t == entity.SupportSolid || t == entity.SupportLiquid || t == entity.SupportMixed
}
