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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, company_id, name, price, product_type, COALESCE(modified_by::text, ''), created_at, updated_at, deleted_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// El precio se mapea como NUMERIC vía el codec de decimales registrado en el pool.
type ProductRepo struct {
	db querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, name, price, product_type, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.Name, product.Price, product.Type,
		product.ModifiedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("producto duplicado: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto no borrado por id.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	product, err := scanProduct(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// GetByCompanyAndName chequeo de unicidad de nombre por empresa. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByCompanyAndName(companyID, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE company_id = $1 AND name = $2 AND deleted_at IS NULL`
	product, err := scanProduct(r.db.QueryRow(context.Background(), query, companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return product, nil
}

// Update actualiza los campos mutables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, product_type = $4,
			modified_by = NULLIF($5, '')::uuid, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Type,
		product.ModifiedBy, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("producto duplicado: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos no borrados, filtrados por empresa si companyID no es vacío.
func (r *ProductRepo) List(companyID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR company_id = NULLIF($1, '')::uuid)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, product)
	}
	return list, rows.Err()
}

// SoftDelete marca deleted_at.
func (r *ProductRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE products SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Price, &p.Type,
		&p.ModifiedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
