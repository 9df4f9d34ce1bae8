// Package scope implementa el repositorio con alcance de tenant: la
// comprobación de pertenencia a la empresa se escribe una sola vez y se
// reutiliza para todas las entidades, en lugar de duplicarla por recurso.
package scope

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Repo envuelve un Store y aplica aislamiento por empresa y la semántica
// de borrado lógico. T se parametriza por la capacidad entity.Record; si
// además implementa entity.CompanyOwned, el acceso cruzado entre tenants
// se rechaza con ErrForbidden sin filtrar más detalle que eso.
type Repo[T entity.Record] struct {
	name  string // nombre de la entidad para los mensajes de error
	store repository.Store[T]
}

// New construye el repositorio con alcance para una entidad.
func New[T entity.Record](name string, store repository.Store[T]) *Repo[T] {
	return &Repo[T]{name: name, store: store}
}

// ListAll devuelve las filas no borradas, filtradas a la empresa del
// llamador cuando callerCompanyID no es vacío. Lista vacía produce
// ErrNotFound, no colección vacía.
func (r *Repo[T]) ListAll(callerCompanyID string) ([]T, error) {
	rows, err := r.store.List(callerCompanyID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no hay %s: %w", r.name, domain.ErrNotFound)
	}
	return rows, nil
}

// GetByID devuelve la fila no borrada con ese id. Si el llamador trae
// empresa y la entidad pertenece a otra, falla con ErrForbidden.
func (r *Repo[T]) GetByID(id, callerCompanyID string) (T, error) {
	var zero T
	row, err := r.store.GetByID(id)
	if err != nil {
		return zero, err
	}
	if callerCompanyID != "" {
		if owned, ok := any(row).(entity.CompanyOwned); ok && owned.OwnerCompany() != callerCompanyID {
			return zero, fmt.Errorf("%s de otra empresa: %w", r.name, domain.ErrForbidden)
		}
	}
	return row, nil
}

// DeleteByID repite el chequeo de GetByID y marca el borrado lógico.
// Borrar una fila ya borrada falla con ErrNotFound.
func (r *Repo[T]) DeleteByID(id, callerCompanyID string) error {
	if _, err := r.GetByID(id, callerCompanyID); err != nil {
		return err
	}
	if err := r.store.SoftDelete(id); err != nil {
		return fmt.Errorf("delete %s: %w", r.name, err)
	}
	return nil
}
