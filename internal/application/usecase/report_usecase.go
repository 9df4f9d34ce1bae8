package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ReportUseCase agregaciones de lectura entre tablas. Cada reporte
// devuelve exactamente una fila; agregación vacía es ErrNotFound.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// GetCustomerWithMostOrders devuelve el cliente con más órdenes shipment.
// En empates el orden es el estable de la agregación subyacente: se
// garantiza "alguna fila entre los máximos", no una en particular.
func (uc *ReportUseCase) GetCustomerWithMostOrders(ctx context.Context, companyID string) (*repository.TopCustomerResult, error) {
	row, err := uc.repo.GetCustomerWithMostOrders(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("sin clientes con órdenes: %w", domain.ErrNotFound)
	}
	return row, nil
}

// GetBestSellingProduct devuelve el producto con mayor cantidad vendida
// (solo órdenes shipment; las delivery no son ventas).
func (uc *ReportUseCase) GetBestSellingProduct(ctx context.Context, companyID string) (*repository.BestSellerResult, error) {
	row, err := uc.repo.GetBestSellingProduct(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("sin ventas: %w", domain.ErrNotFound)
	}
	return row, nil
}

// GetProductWithHighestStock devuelve el producto con mayor stock actual
// dentro de la primera bodega (alfabéticamente) con stock positivo.
func (uc *ReportUseCase) GetProductWithHighestStock(ctx context.Context, companyID string) (*repository.WarehouseStockResult, error) {
	row, err := uc.repo.GetProductWithHighestStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("sin stock positivo: %w", domain.ErrNotFound)
	}
	return row, nil
}
