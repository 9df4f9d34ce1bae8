package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Store es la porción genérica del puerto de persistencia que comparten
// todas las entidades. Las filas con borrado lógico quedan fuera de
// cualquier consulta de este puerto.
type Store[T entity.Record] interface {
	// List devuelve las filas no borradas. Con companyID vacío no se
	// filtra; con companyID la implementación restringe al tenant (para
	// entidades sin company_id propio el filtro se resuelve vía join).
	List(companyID string) ([]T, error)
	// GetByID devuelve la fila no borrada con ese id, o domain.ErrNotFound.
	GetByID(id string) (T, error)
	// SoftDelete marca deleted_at; nunca se limpia.
	SoftDelete(id string) error
}
