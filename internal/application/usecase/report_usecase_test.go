package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas fijas; nil simula agregación vacía.
type fakeReportRepo struct {
	topCustomer  *repository.TopCustomerResult
	bestSeller   *repository.BestSellerResult
	highestStock *repository.WarehouseStockResult
	err          error

	gotCompanyID string
}

func (r *fakeReportRepo) GetCustomerWithMostOrders(ctx context.Context, companyID string) (*repository.TopCustomerResult, error) {
	r.gotCompanyID = companyID
	return r.topCustomer, r.err
}

func (r *fakeReportRepo) GetBestSellingProduct(ctx context.Context, companyID string) (*repository.BestSellerResult, error) {
	r.gotCompanyID = companyID
	return r.bestSeller, r.err
}

func (r *fakeReportRepo) GetProductWithHighestStock(ctx context.Context, companyID string) (*repository.WarehouseStockResult, error) {
	r.gotCompanyID = companyID
	return r.highestStock, r.err
}

func TestReportes_FilaPresente_PasaSinCambios(t *testing.T) {
	repo := &fakeReportRepo{
		topCustomer: &repository.TopCustomerResult{
			CustomerName: "Distribuidora Sur", CompanyName: "Acme", OrderCount: 7, TotalQuantity: 120,
		},
		bestSeller: &repository.BestSellerResult{
			ProductName: "Tornillos", Price: decimal.RequireFromString("1.50"), CompanyName: "Acme", TotalQuantity: 88,
		},
		highestStock: &repository.WarehouseStockResult{
			Warehouse: "Central", ProductName: "Tornillos", CurrentStock: 6,
		},
	}
	uc := usecase.NewReportUseCase(repo)
	ctx := context.Background()

	top, err := uc.GetCustomerWithMostOrders(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, repo.topCustomer, top)
	assert.Equal(t, "company-1", repo.gotCompanyID)

	best, err := uc.GetBestSellingProduct(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, repo.bestSeller, best)

	stock, err := uc.GetProductWithHighestStock(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, repo.highestStock, stock)
}

func TestReportes_AgregacionVacia_NotFound(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{})
	ctx := context.Background()

	_, err := uc.GetCustomerWithMostOrders(ctx, "company-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetBestSellingProduct(ctx, "company-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetProductWithHighestStock(ctx, "company-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportes_SinFiltroDeEmpresa(t *testing.T) {
	repo := &fakeReportRepo{
		topCustomer: &repository.TopCustomerResult{CustomerName: "Distribuidora Sur"},
	}
	uc := usecase.NewReportUseCase(repo)

	_, err := uc.GetCustomerWithMostOrders(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", repo.gotCompanyID, "companyID vacío significa sin filtro")
}

func TestReportes_ErrorDelStore_SePropaga(t *testing.T) {
	wantErr := errors.New("conexión caída")
	uc := usecase.NewReportUseCase(&fakeReportRepo{err: wantErr})

	_, err := uc.GetBestSellingProduct(context.Background(), "company-1")
	assert.ErrorIs(t, err, wantErr)
}
