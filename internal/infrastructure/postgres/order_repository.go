package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, company_id, warehouse_id, business_partner_id, order_number, order_type, COALESCE(modified_by::text, ''), created_at, updated_at, deleted_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(db querier) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, warehouse_id, business_partner_id, order_number, order_type, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.WarehouseID, order.BusinessPartnerID, order.OrderNumber, order.Type,
		order.ModifiedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("orden duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden no borrada por id.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND deleted_at IS NULL`
	order, err := scanOrder(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// GetByCompanyAndNumber chequeo de unicidad de número de orden por empresa. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByCompanyAndNumber(companyID, orderNumber string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE company_id = $1 AND order_number = $2 AND deleted_at IS NULL`
	order, err := scanOrder(r.db.QueryRow(context.Background(), query, companyID, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by number: %w", err)
	}
	return order, nil
}

// Update actualiza los campos mutables de la orden.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET warehouse_id = $2, business_partner_id = $3, order_number = $4, order_type = $5,
			modified_by = NULLIF($6, '')::uuid, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.WarehouseID, order.BusinessPartnerID, order.OrderNumber, order.Type,
		order.ModifiedBy, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("orden duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista órdenes no borradas, filtradas por empresa si companyID no es vacío.
func (r *OrderRepo) List(companyID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR company_id = NULLIF($1, '')::uuid)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// SoftDelete marca deleted_at.
func (r *OrderRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE orders SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.CompanyID, &o.WarehouseID, &o.BusinessPartnerID, &o.OrderNumber, &o.Type,
		&o.ModifiedBy, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
