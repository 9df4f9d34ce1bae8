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

// OrderItemUseCase CRUD de líneas de orden. La línea no tiene empresa
// propia: el aislamiento de tenant pasa por la orden padre. Dentro de una
// orden no puede repetirse el producto.
type OrderItemUseCase struct {
	scoped    *scope.Repo[*entity.OrderItem]
	repo      repository.OrderItemRepository
	orderRepo repository.OrderRepository
}

// NewOrderItemUseCase construye el caso de uso.
func NewOrderItemUseCase(repo repository.OrderItemRepository, orderRepo repository.OrderRepository) *OrderItemUseCase {
	return &OrderItemUseCase{
		scoped:    scope.New[*entity.OrderItem]("OrderItem", repo),
		repo:      repo,
		orderRepo: orderRepo,
	}
}

// ListAll lista las líneas cuyas órdenes pertenecen a la empresa del llamador.
func (uc *OrderItemUseCase) ListAll(callerCompanyID string) ([]*entity.OrderItem, error) {
	return uc.scoped.ListAll(callerCompanyID)
}

// GetByID obtiene una línea; el chequeo de empresa usa la orden padre.
func (uc *OrderItemUseCase) GetByID(id, callerCompanyID string) (*entity.OrderItem, error) {
	return uc.scoped.GetByID(id, callerCompanyID)
}

// Create crea una línea sobre una orden de la empresa del llamador.
func (uc *OrderItemUseCase) Create(in dto.CreateOrderItemRequest, actingUserID, callerCompanyID string) (*entity.OrderItem, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("cantidad no positiva: %w", domain.ErrInvalidInput)
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if callerCompanyID != "" && order.CompanyID != callerCompanyID {
		return nil, fmt.Errorf("orden de otra empresa: %w", domain.ErrForbidden)
	}
	existing, err := uc.repo.GetByOrderAndProduct(in.OrderID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("producto ya presente en la orden: %w", domain.ErrConflict)
	}
	now := time.Now()
	item := &entity.OrderItem{
		Base:           entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		OrderID:        in.OrderID,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		OrderCompanyID: order.CompanyID,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update modifica cantidad o producto de la línea.
func (uc *OrderItemUseCase) Update(id string, in dto.UpdateOrderItemRequest, actingUserID, callerCompanyID string) (*entity.OrderItem, error) {
	item, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.ProductID != nil && *in.ProductID != item.ProductID {
		existing, err := uc.repo.GetByOrderAndProduct(item.OrderID, *in.ProductID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("producto ya presente en la orden: %w", domain.ErrConflict)
		}
		item.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad no positiva: %w", domain.ErrInvalidInput)
		}
		item.Quantity = *in.Quantity
	}
	item.ModifiedBy = actingUserID
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete marca el borrado lógico de la línea.
func (uc *OrderItemUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}
