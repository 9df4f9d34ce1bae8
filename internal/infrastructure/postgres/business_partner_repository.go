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

var _ repository.BusinessPartnerRepository = (*BusinessPartnerRepo)(nil)

const partnerColumns = `id, company_id, name, email, partner_type, COALESCE(modified_by::text, ''), created_at, updated_at, deleted_at`

// BusinessPartnerRepo implementación del puerto BusinessPartnerRepository sobre PostgreSQL.
type BusinessPartnerRepo struct {
	db querier
}

// NewBusinessPartnerRepository construye el adaptador.
func NewBusinessPartnerRepository(db querier) *BusinessPartnerRepo {
	return &BusinessPartnerRepo{db: db}
}

// Create persiste un nuevo socio de negocio.
func (r *BusinessPartnerRepo) Create(partner *entity.BusinessPartner) error {
	query := `
		INSERT INTO business_partners (id, company_id, name, email, partner_type, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		partner.ID, partner.CompanyID, partner.Name, partner.Email, partner.Type,
		partner.ModifiedBy, partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("socio duplicado: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert business partner: %w", err)
	}
	return nil
}

// GetByID obtiene un socio no borrado por id.
func (r *BusinessPartnerRepo) GetByID(id string) (*entity.BusinessPartner, error) {
	query := `SELECT ` + partnerColumns + ` FROM business_partners WHERE id = $1 AND deleted_at IS NULL`
	partner, err := scanPartner(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get business partner by id: %w", err)
	}
	return partner, nil
}

// GetByCompanyAndName chequeo de unicidad de nombre por empresa. Devuelve nil, nil si no existe.
func (r *BusinessPartnerRepo) GetByCompanyAndName(companyID, name string) (*entity.BusinessPartner, error) {
	query := `SELECT ` + partnerColumns + ` FROM business_partners
		WHERE company_id = $1 AND name = $2 AND deleted_at IS NULL`
	partner, err := scanPartner(r.db.QueryRow(context.Background(), query, companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business partner by name: %w", err)
	}
	return partner, nil
}

// GetByCompanyAndEmail chequeo de unicidad de email por empresa. Devuelve nil, nil si no existe.
func (r *BusinessPartnerRepo) GetByCompanyAndEmail(companyID, email string) (*entity.BusinessPartner, error) {
	query := `SELECT ` + partnerColumns + ` FROM business_partners
		WHERE company_id = $1 AND email = $2 AND deleted_at IS NULL`
	partner, err := scanPartner(r.db.QueryRow(context.Background(), query, companyID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business partner by email: %w", err)
	}
	return partner, nil
}

// Update actualiza los campos mutables del socio.
func (r *BusinessPartnerRepo) Update(partner *entity.BusinessPartner) error {
	query := `
		UPDATE business_partners SET name = $2, email = $3, partner_type = $4,
			modified_by = NULLIF($5, '')::uuid, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query,
		partner.ID, partner.Name, partner.Email, partner.Type, partner.ModifiedBy, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("socio duplicado: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update business partner: %w", err)
	}
	return nil
}

// List lista socios no borrados, filtrados por empresa si companyID no es vacío.
func (r *BusinessPartnerRepo) List(companyID string) ([]*entity.BusinessPartner, error) {
	query := `
		SELECT ` + partnerColumns + ` FROM business_partners
		WHERE deleted_at IS NULL
		  AND (NULLIF($1, '') IS NULL OR company_id = NULLIF($1, '')::uuid)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list business partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessPartner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business partner: %w", err)
		}
		list = append(list, partner)
	}
	return list, rows.Err()
}

// SoftDelete marca deleted_at.
func (r *BusinessPartnerRepo) SoftDelete(id string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE business_partners SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete business partner: %w", err)
	}
	return nil
}

func scanPartner(row pgx.Row) (*entity.BusinessPartner, error) {
	var p entity.BusinessPartner
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Email, &p.Type,
		&p.ModifiedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
