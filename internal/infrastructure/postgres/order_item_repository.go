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

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// Las lecturas hacen join con orders para resolver la empresa de la línea:
// las líneas no cargan company_id propio.
const orderItemColumns = `oi.id, oi.order_id, oi.product_id, oi.quantity, COALESCE(oi.modified_by::text, ''), oi.created_at, oi.updated_at, oi.deleted_at, o.company_id`

const orderItemFrom = ` FROM order_items oi
	JOIN orders o ON o.id = oi.order_id AND o.deleted_at IS NULL`

// OrderItemRepo implementación del puerto OrderItemRepository sobre PostgreSQL.
type OrderItemRepo struct {
	db querier
}

// NewOrderItemRepository construye el adaptador.
func NewOrderItemRepository(db querier) *OrderItemRepo {
	return &OrderItemRepo{db: db}
}

// Create persiste una nueva línea de orden.
func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity,
		item.ModifiedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("línea de orden duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea no borrada por id.
func (r *OrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + orderItemFrom + `
		WHERE oi.id = $1 AND oi.deleted_at IS NULL`
	item, err := scanOrderItem(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order item by id: %w", err)
	}
	return item, nil
}

// GetByOrderAndProduct chequeo de unicidad (orden, producto). Devuelve nil, nil si no existe.
func (r *OrderItemRepo) GetByOrderAndProduct(orderID, productID string) (*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + orderItemFrom + `
		WHERE oi.order_id = $1 AND oi.product_id = $2 AND oi.deleted_at IS NULL`
	item, err := scanOrderItem(r.db.QueryRow(context.Background(), query, orderID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item by order and product: %w", err)
	}
	return item, nil
}

// Update actualiza los campos mutables de la línea.
func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET product_id = $2, quantity = $3,
			modified_by = NULLIF($4, '')::uuid, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.ProductID, item.Quantity, item.ModifiedBy, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("línea de orden duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// List lista líneas no borradas, filtradas por la empresa de la orden padre si companyID no es vacío.
func (r *OrderItemRepo) List(companyID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT ` + orderItemColumns + orderItemFrom + `
		WHERE oi.deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR o.company_id = NULLIF($1, '')::uuid)
		ORDER BY oi.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// SoftDelete marca deleted_at.
func (r *OrderItemRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE order_items SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

func scanOrderItem(row pgx.Row) (*entity.OrderItem, error) {
	var i entity.OrderItem
	if err := row.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Quantity,
		&i.ModifiedBy, &i.CreatedAt, &i.UpdatedAt, &i.DeletedAt, &i.OrderCompanyID); err != nil {
		return nil, err
	}
	return &i, nil
}
