package entity

import "time"

// Base agrupa las columnas comunes a todas las tablas: id, auditoría y
// borrado lógico. DeletedAt distinto de nil marca la fila como eliminada;
// las consultas por defecto la excluyen.
type Base struct {
	ID         string     `json:"id"`
	ModifiedBy string     `json:"modifiedBy"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

// RecordID identifica la fila (implementa Record).
func (b *Base) RecordID() string { return b.ID }

// Record es la capacidad mínima que exige el repositorio con alcance de
// tenant: toda entidad persistida expone su id.
type Record interface {
	RecordID() string
}

// CompanyOwned la declaran las entidades que pertenecen a una empresa.
// El accessor explícito reemplaza la inspección de metadatos del ORM:
// el repositorio genérico decide por interfaz, no por reflexión.
type CompanyOwned interface {
	Record
	OwnerCompany() string
}
