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

// OrderUseCase CRUD de órdenes. El número de orden es único dentro de la
// empresa; el tipo decide el signo del movimiento de stock en reportes.
type OrderUseCase struct {
	scoped *scope.Repo[*entity.Order]
	repo   repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{scoped: scope.New[*entity.Order]("Order", repo), repo: repo}
}

// ListAll lista las órdenes de la empresa del llamador.
func (uc *OrderUseCase) ListAll(callerCompanyID string) ([]*entity.Order, error) {
	return uc.scoped.ListAll(callerCompanyID)
}

// GetByID obtiene una orden (de la misma empresa) por id.
func (uc *OrderUseCase) GetByID(id, callerCompanyID string) (*entity.Order, error) {
	return uc.scoped.GetByID(id, callerCompanyID)
}

// Create crea una orden en la empresa del llamador.
func (uc *OrderUseCase) Create(companyID string, in dto.CreateOrderRequest, actingUserID string) (*entity.Order, error) {
	if !validOrderType(in.Type) {
		return nil, fmt.Errorf("tipo de orden %q: %w", in.Type, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCompanyAndNumber(companyID, in.OrderNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("número de orden ya registrado: %w", domain.ErrConflict)
	}
	now := time.Now()
	order := &entity.Order{
		Base:              entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		CompanyID:         companyID,
		WarehouseID:       in.WarehouseID,
		BusinessPartnerID: in.BusinessPartnerID,
		OrderNumber:       in.OrderNumber,
		Type:              in.Type,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update modifica una orden chequeando unicidad del número nuevo.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest, actingUserID, callerCompanyID string) (*entity.Order, error) {
	order, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.OrderNumber != nil && *in.OrderNumber != order.OrderNumber {
		existing, err := uc.repo.GetByCompanyAndNumber(order.CompanyID, *in.OrderNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("número de orden ya registrado: %w", domain.ErrConflict)
		}
		order.OrderNumber = *in.OrderNumber
	}
	if in.WarehouseID != nil {
		order.WarehouseID = *in.WarehouseID
	}
	if in.BusinessPartnerID != nil {
		order.BusinessPartnerID = *in.BusinessPartnerID
	}
	if in.Type != nil {
		if !validOrderType(*in.Type) {
			return nil, fmt.Errorf("tipo de orden %q: %w", *in.Type, domain.ErrInvalidInput)
		}
		order.Type = *in.Type
	}
	order.ModifiedBy = actingUserID
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete marca el borrado lógico de la orden.
func (uc *OrderUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}

func validOrderType(t string) bool {
	return t == entity.OrderShipment || t == entity.OrderDelivery
}
