package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopCustomerResult fila del reporte "cliente con más órdenes".
type TopCustomerResult struct {
	CustomerName  string
	CompanyName   string
	OrderCount    int
	TotalQuantity int64
}

// BestSellerResult fila del reporte "producto más vendido".
type BestSellerResult struct {
	ProductName   string
	Price         decimal.Decimal
	CompanyName   string
	TotalQuantity int64
}

// WarehouseStockResult fila del reporte "mayor stock actual por bodega".
// CurrentStock = Σ cantidades delivery − Σ cantidades shipment.
type WarehouseStockResult struct {
	Warehouse    string
	ProductName  string
	CurrentStock int64
}

// ReportRepository define las agregaciones de lectura entre tablas.
// Las implementaciones son read-only. companyID vacío = sin filtro de
// empresa; cada método devuelve a lo sumo una fila (nil, nil si la
// agregación no produjo ninguna).
type ReportRepository interface {
	// GetCustomerWithMostOrders: entre los partners tipo customer con al
	// menos una orden shipment, el de mayor número de órdenes distintas.
	GetCustomerWithMostOrders(ctx context.Context, companyID string) (*TopCustomerResult, error)

	// GetBestSellingProduct: producto con mayor suma de cantidades en
	// líneas de órdenes shipment.
	GetBestSellingProduct(ctx context.Context, companyID string) (*BestSellerResult, error)

	// GetProductWithHighestStock: por par (bodega, producto) computa el
	// stock actual, descarta los no positivos y devuelve la primera fila
	// ordenando por nombre de bodega asc y stock desc.
	GetProductWithHighestStock(ctx context.Context, companyID string) (*WarehouseStockResult, error)
}
