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

// InvoiceUseCase CRUD de facturas. El número de factura es único global
// y la relación con la orden es uno a uno.
type InvoiceUseCase struct {
	scoped    *scope.Repo[*entity.Invoice]
	repo      repository.InvoiceRepository
	orderRepo repository.OrderRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, orderRepo repository.OrderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{
		scoped:    scope.New[*entity.Invoice]("Invoice", repo),
		repo:      repo,
		orderRepo: orderRepo,
	}
}

// ListAll lista las facturas de la empresa del llamador.
func (uc *InvoiceUseCase) ListAll(callerCompanyID string) ([]*entity.Invoice, error) {
	return uc.scoped.ListAll(callerCompanyID)
}

// GetByID obtiene una factura (de la misma empresa) por id.
func (uc *InvoiceUseCase) GetByID(id, callerCompanyID string) (*entity.Invoice, error) {
	return uc.scoped.GetByID(id, callerCompanyID)
}

// Create factura una orden de la empresa del llamador.
func (uc *InvoiceUseCase) Create(companyID string, in dto.CreateInvoiceRequest, actingUserID string) (*entity.Invoice, error) {
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if companyID != "" && order.CompanyID != companyID {
		return nil, fmt.Errorf("orden de otra empresa: %w", domain.ErrForbidden)
	}
	if existing, err := uc.repo.GetByNumber(in.InvoiceNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("número de factura ya registrado: %w", domain.ErrConflict)
	}
	if existing, err := uc.repo.GetByOrder(in.OrderID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("la orden ya tiene factura: %w", domain.ErrConflict)
	}
	now := time.Now()
	invoice := &entity.Invoice{
		Base:          entity.Base{ID: uuid.New().String(), ModifiedBy: actingUserID, CreatedAt: now, UpdatedAt: now},
		CompanyID:     order.CompanyID,
		OrderID:       in.OrderID,
		InvoiceNumber: in.InvoiceNumber,
		Date:          in.Date,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update modifica número o fecha de la factura.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest, actingUserID, callerCompanyID string) (*entity.Invoice, error) {
	invoice, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.InvoiceNumber != nil && *in.InvoiceNumber != invoice.InvoiceNumber {
		existing, err := uc.repo.GetByNumber(*in.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("número de factura ya registrado: %w", domain.ErrConflict)
		}
		invoice.InvoiceNumber = *in.InvoiceNumber
	}
	if in.Date != nil {
		invoice.Date = *in.Date
	}
	invoice.ModifiedBy = actingUserID
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete marca el borrado lógico de la factura.
func (uc *InvoiceUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}
