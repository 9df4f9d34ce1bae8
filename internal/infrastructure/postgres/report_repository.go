package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementa las agregaciones de lectura con SQL crudo.
// $1 es el filtro opcional de empresa: vacío = todas las empresas.
type ReportRepo struct {
	db querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db querier) *ReportRepo {
	return &ReportRepo{db: db}
}

// GetCustomerWithMostOrders devuelve el cliente con más órdenes shipment
// distintas, junto con la suma de cantidades de sus líneas.
func (r *ReportRepo) GetCustomerWithMostOrders(ctx context.Context, companyID string) (*repository.TopCustomerResult, error) {
	query := `
		SELECT bp.name, c.name, COUNT(DISTINCT o.id) AS order_count, COALESCE(SUM(oi.quantity), 0) AS total_quantity
		FROM business_partners bp
		JOIN companies c ON c.id = bp.company_id AND c.deleted_at IS NULL
		JOIN orders o ON o.business_partner_id = bp.id AND o.order_type = 'shipment' AND o.deleted_at IS NULL
		LEFT JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL
		WHERE bp.partner_type = 'customer' AND bp.deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR bp.company_id = NULLIF($1, '')::uuid)
		GROUP BY bp.name, c.name
		ORDER BY order_count DESC
		LIMIT 1`
	var res repository.TopCustomerResult
	err := r.db.QueryRow(ctx, query, companyID).
		Scan(&res.CustomerName, &res.CompanyName, &res.OrderCount, &res.TotalQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("report top customer: %w", err)
	}
	return &res, nil
}

// GetBestSellingProduct devuelve el producto con mayor suma de cantidades
// en líneas de órdenes shipment. Las órdenes delivery no cuentan como venta.
func (r *ReportRepo) GetBestSellingProduct(ctx context.Context, companyID string) (*repository.BestSellerResult, error) {
	query := `
		SELECT p.name, p.price, c.name, SUM(oi.quantity) AS total_quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id AND o.order_type = 'shipment' AND o.deleted_at IS NULL
		JOIN products p ON p.id = oi.product_id AND p.deleted_at IS NULL
		JOIN companies c ON c.id = p.company_id AND c.deleted_at IS NULL
		WHERE oi.deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR o.company_id = NULLIF($1, '')::uuid)
		GROUP BY p.name, p.price, c.name
		ORDER BY total_quantity DESC
		LIMIT 1`
	var res repository.BestSellerResult
	err := r.db.QueryRow(ctx, query, companyID).
		Scan(&res.ProductName, &res.Price, &res.CompanyName, &res.TotalQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("report best seller: %w", err)
	}
	return &res, nil
}

// GetProductWithHighestStock computa el stock actual por par (bodega,
// producto): Σ delivery − Σ shipment. Descarta stocks no positivos y
// devuelve la primera fila por nombre de bodega asc, stock desc. El
// par se agrupa por id: dos bodegas homónimas de empresas distintas no
// se mezclan en el modo sin filtro.
func (r *ReportRepo) GetProductWithHighestStock(ctx context.Context, companyID string) (*repository.WarehouseStockResult, error) {
	query := `
		SELECT w.name, p.name,
			SUM(CASE WHEN o.order_type = 'delivery' THEN oi.quantity ELSE -oi.quantity END) AS current_stock
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id AND o.deleted_at IS NULL
		JOIN companies c ON c.id = o.company_id AND c.deleted_at IS NULL
		JOIN warehouses w ON w.id = o.warehouse_id AND w.deleted_at IS NULL
		JOIN products p ON p.id = oi.product_id AND p.deleted_at IS NULL
		WHERE oi.deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR o.company_id = NULLIF($1, '')::uuid)
		GROUP BY w.id, w.name, p.id, p.name
		HAVING SUM(CASE WHEN o.order_type = 'delivery' THEN oi.quantity ELSE -oi.quantity END) > 0
		ORDER BY w.name ASC, current_stock DESC
		LIMIT 1`
	var res repository.WarehouseStockResult
	err := r.db.QueryRow(ctx, query, companyID).
		Scan(&res.Warehouse, &res.ProductName, &res.CurrentStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("report highest stock: %w", err)
	}
	return &res, nil
}
