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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, company_id, order_id, invoice_number, date, COALESCE(modified_by::text, ''), created_at, updated_at, deleted_at`

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	db querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(db querier) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, order_id, invoice_number, date, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.OrderID, invoice.InvoiceNumber, invoice.Date,
		invoice.ModifiedBy, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("factura duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura no borrada por id.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND deleted_at IS NULL`
	invoice, err := scanInvoice(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return invoice, nil
}

// GetByNumber chequeo de unicidad global del número de factura. Devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByNumber(invoiceNumber string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE invoice_number = $1 AND deleted_at IS NULL`
	invoice, err := scanInvoice(r.db.QueryRow(context.Background(), query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return invoice, nil
}

// GetByOrder busca la factura de una orden (relación uno a uno). Devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByOrder(orderID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE order_id = $1 AND deleted_at IS NULL`
	invoice, err := scanInvoice(r.db.QueryRow(context.Background(), query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by order: %w", err)
	}
	return invoice, nil
}

// Update actualiza los campos mutables de la factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET invoice_number = $2, date = $3,
			modified_by = NULLIF($4, '')::uuid, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.Date, invoice.ModifiedBy, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("factura duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// List lista facturas no borradas, filtradas por empresa si companyID no es vacío.
func (r *InvoiceRepo) List(companyID string) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + ` FROM invoices
		WHERE deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR company_id = NULLIF($1, '')::uuid)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, invoice)
	}
	return list, rows.Err()
}

// SoftDelete marca deleted_at.
func (r *InvoiceRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE invoices SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	if err := row.Scan(&i.ID, &i.CompanyID, &i.OrderID, &i.InvoiceNumber, &i.Date,
		&i.ModifiedBy, &i.CreatedAt, &i.UpdatedAt, &i.DeletedAt); err != nil {
		return nil, err
	}
	return &i, nil
}
