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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, COALESCE(modified_by::text, ''), created_at, updated_at, deleted_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db querier
}

// NewCompanyRepository construye el adaptador; db puede ser el pool o una tx.
func NewCompanyRepository(db querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, modified_by, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.ModifiedBy, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("empresa duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa no borrada por id.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND deleted_at IS NULL`
	company, err := scanCompany(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return company, nil
}

// GetByName busca por nombre (unicidad global). Devuelve nil, nil si no existe.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1 AND deleted_at IS NULL`
	company, err := scanCompany(r.db.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return company, nil
}

// Update actualiza nombre y auditoría.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, modified_by = NULLIF($3, '')::uuid, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.ModifiedBy, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("empresa duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// SetModifiedBy estampa el último editor (usado por el bootstrap de owner).
func (r *CompanyRepo) SetModifiedBy(id, userID string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE companies SET modified_by = $2 WHERE id = $1`, id, userID)
	if err != nil {
		return fmt.Errorf("set company modified_by: %w", err)
	}
	return nil
}

// List lista empresas no borradas. Company es la raíz del tenant: el
// filtro de empresa no aplica.
func (r *CompanyRepo) List(_ string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, company)
	}
	return list, rows.Err()
}

// SoftDelete marca deleted_at.
func (r *CompanyRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE companies SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.ModifiedBy, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
