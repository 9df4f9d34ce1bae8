// Package authz evalúa permisos por rol. Es una función pura sin I/O:
// quien llama (la capa de transporte) decide qué hacer cuando la
// respuesta es false — normalmente producir domain.ErrForbidden.
package authz

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Conjuntos canónicos de roles por tipo de operación.
var (
	// ReadRoles: cualquier rol autenticado puede leer.
	ReadRoles = []entity.Role{entity.RoleViewer, entity.RoleOperator, entity.RoleOwner}
	// WriteRoles: crear y actualizar exige operator u owner.
	WriteRoles = []entity.Role{entity.RoleOperator, entity.RoleOwner}
	// DeleteRoles: borrar exige owner.
	DeleteRoles = []entity.Role{entity.RoleOwner}
)

// IsAllowed indica si el rol pertenece al conjunto requerido.
// Con conjunto vacío no hay restricción declarada y se permite el acceso.
func IsAllowed(role entity.Role, required ...entity.Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
