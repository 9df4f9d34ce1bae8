package entity

// Role define el nivel de permisos de un usuario dentro de su empresa.
type Role string

// Roles válidos para User. owner ⊃ operator ⊃ viewer en lectura;
// escribir exige operator u owner; borrar exige owner.
const (
	RoleOwner    Role = "owner"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleOperator || r == RoleViewer
}

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	Base
	CompanyID    string `json:"companyId"`
	Username     string `json:"username"`
	Email        string `json:"email"` // único global
	PasswordHash string `json:"-"`     // bcrypt, nunca plano después de persistir
	Role         Role   `json:"role"`
}

// OwnerCompany implementa CompanyOwned.
func (u *User) OwnerCompany() string { return u.CompanyID }
