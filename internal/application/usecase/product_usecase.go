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

// ProductUseCase CRUD de productos. El nombre es único por empresa y el
// precio debe ser un decimal positivo.
type ProductUseCase struct {
	scoped *scope.Repo[*entity.Product]
	repo   repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{scoped: scope.New[*entity.Product]("Product", repo), repo: repo}
}

// ListAll lista los productos de la empresa del llamador.
func (uc *ProductUseCase) ListAll(callerCompanyID string) ([]*entity.Product, error) {
	return uc.scoped.ListAll(callerCompanyID)
}

// GetByID obtiene un producto (de la misma empresa) por id.
func (uc *ProductUseCase) GetByID(id, callerCompanyID string) (*entity.Product, error) {
	return uc.scoped.GetByID(id, callerCompanyID)
}

// Create crea un producto en la empresa del llamador.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest, actingUserID string) (*entity.Product, error) {
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("precio no positivo: %w", domain.ErrInvalidInput)
	}
	if !validProductType(in.Type) {
		return nil, fmt.Errorf("tipo de producto %q: %w", in.Type, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("producto ya registrado: %w", domain.ErrConflict)
	}
	now := time.Now()
	product := &entity.Product{
		Base:      entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		CompanyID: companyID,
		Name:      in.Name,
		Price:     in.Price,
		Type:      in.Type,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update modifica un producto chequeando unicidad y precio positivo.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest, actingUserID, callerCompanyID string) (*entity.Product, error) {
	product, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != product.Name {
		existing, err := uc.repo.GetByCompanyAndName(product.CompanyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("nombre de producto ya registrado: %w", domain.ErrConflict)
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, fmt.Errorf("precio no positivo: %w", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Type != nil {
		if !validProductType(*in.Type) {
			return nil, fmt.Errorf("tipo de producto %q: %w", *in.Type, domain.ErrInvalidInput)
		}
		product.Type = *in.Type
	}
	product.ModifiedBy = actingUserID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete marca el borrado lógico del producto.
func (uc *ProductUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}

func validProductType(t string) bool {
	return t == entity.ProductSolid || t == entity.ProductLiquid
}
